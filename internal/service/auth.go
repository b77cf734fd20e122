package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/msomdec/weblog/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTTL       = 24 * time.Hour
	rememberTokenTTL = 30 * 24 * time.Hour
)

// AuthService handles registration, login, session tokens, and the
// remember-me token lifecycle.
type AuthService struct {
	users      domain.UserRepository
	jwtSecret  []byte
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, jwtSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
	}
}

// LoginResult carries the outcome of a successful login.
type LoginResult struct {
	User    *domain.User
	Session domain.Session
	// Token is the signed session token for the auth cookie.
	Token string
	// RememberToken is set only when the caller asked to be remembered.
	RememberToken string
}

// Register creates a new user account. Alias and email uniqueness is
// enforced atomically by the repository, which also grants the first
// registered user admin rights.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, alias, email, password string) (*domain.User, error) {
	if firstName == "" || lastName == "" || alias == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Alias:        alias,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    domain.FormatTime(time.Now()),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a session token. An unknown
// alias and a wrong password both return ErrUnauthorized so the caller
// cannot tell which it was. When remember is set, a random remember
// token with a 30-day expiry is minted and persisted on the user
// record.
func (s *AuthService) Login(ctx context.Context, alias, password string, remember bool) (*LoginResult, error) {
	user, err := s.users.GetByAlias(ctx, alias)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	res, err := s.issueSession(user)
	if err != nil {
		return nil, err
	}

	if remember {
		token, err := generateRememberToken()
		if err != nil {
			return nil, fmt.Errorf("generate remember token: %w", err)
		}
		user.RememberToken = &domain.RememberToken{
			Token:     token,
			ExpiresAt: time.Now().Add(rememberTokenTTL).Unix(),
		}
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("store remember token: %w", err)
		}
		res.RememberToken = token
	}

	return res, nil
}

// LoginWithRememberToken re-derives a session from a remember cookie.
// Unknown or expired tokens fail closed with ErrUnauthorized.
func (s *AuthService) LoginWithRememberToken(ctx context.Context, token string) (*LoginResult, error) {
	user, err := s.users.GetByRememberToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.RememberToken == nil || time.Now().Unix() >= user.RememberToken.ExpiresAt {
		return nil, domain.ErrUnauthorized
	}
	return s.issueSession(user)
}

// ValidateToken parses a session token and returns the session state
// it carries. The session is self-contained; no I/O is performed.
func (s *AuthService) ValidateToken(tokenString string) (*domain.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, domain.ErrUnauthorized
	}

	sess := &domain.Session{UserID: sub}
	sess.Alias, _ = claims["alias"].(string)
	sess.FirstName, _ = claims["firstname"].(string)
	sess.LastName, _ = claims["lastname"].(string)
	sess.IsAdmin, _ = claims["is_admin"].(bool)
	return sess, nil
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *AuthService) issueSession(user *domain.User) (*LoginResult, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"alias":     user.Alias,
		"firstname": user.FirstName,
		"lastname":  user.LastName,
		"is_admin":  user.IsAdmin,
		"iat":       now.Unix(),
		"exp":       now.Add(sessionTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &LoginResult{
		User: user,
		Session: domain.Session{
			UserID:    user.ID,
			Alias:     user.Alias,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			IsAdmin:   user.IsAdmin,
		},
		Token: token,
	}, nil
}

func generateRememberToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
