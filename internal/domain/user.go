package domain

import "context"

// RememberToken is a long-lived credential substitute stored on a user
// record. A token past its expiry is treated as absent.
type RememberToken struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// User represents a registered user of the site. PasswordHash is the
// bcrypt hash of the password; the plaintext is never stored.
type User struct {
	ID            string         `json:"id"`
	Alias         string         `json:"alias"`
	FirstName     string         `json:"firstname"`
	LastName      string         `json:"lastname"`
	Email         string         `json:"email"`
	PasswordHash  string         `json:"password"`
	CreatedAt     string         `json:"created_at"`
	IsAdmin       bool           `json:"is_admin"`
	RememberToken *RememberToken `json:"remember_token,omitempty"`
}

// UserRepository defines persistence operations for users. Alias and
// email lookups compare case-insensitively.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByAlias(ctx context.Context, alias string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByRememberToken(ctx context.Context, token string) (*User, error)
	Update(ctx context.Context, user *User) error
}
