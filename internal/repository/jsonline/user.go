package jsonline

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/weblog/internal/domain"
)

// UserRepository implements domain.UserRepository over users.txt.
//
// Users are the one entity with an update path: attaching a remember
// token rewrites the whole file in place, preserving record order.
type UserRepository struct {
	table *table[domain.User]
}

// NewUserRepository creates a file-backed UserRepository.
func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{table: newTable[domain.User](s.dataFile(usersFile))}
}

// Create appends the user after checking alias and email uniqueness,
// both compared case-insensitively. The check and the append happen
// under the table's write lock, so two concurrent registrations for
// the same alias cannot both pass. The first user in the table is
// granted admin rights; everyone after that defaults to non-admin.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.table.appendChecked(func(existing []domain.User) (domain.User, error) {
		for _, u := range existing {
			if strings.EqualFold(u.Alias, user.Alias) {
				return domain.User{}, domain.ErrDuplicateAlias
			}
			if strings.EqualFold(u.Email, user.Email) {
				return domain.User{}, domain.ErrDuplicateEmail
			}
		}
		user.IsAdmin = len(existing) == 0
		return *user, nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id })
}

func (r *UserRepository) GetByAlias(ctx context.Context, alias string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return strings.EqualFold(u.Alias, alias) })
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepository) GetByRememberToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}
	return r.find(func(u domain.User) bool {
		return u.RememberToken != nil && u.RememberToken.Token == token
	})
}

// Update replaces the record with a matching ID in place, leaving the
// position and content of every other record untouched. Updating an
// unknown ID returns ErrNotFound without touching the file.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return r.table.rewriteWith(func(existing []domain.User) ([]domain.User, error) {
		for i := range existing {
			if existing[i].ID == user.ID {
				existing[i] = *user
				return existing, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

func (r *UserRepository) find(match func(domain.User) bool) (*domain.User, error) {
	users, err := r.table.scanAll()
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	for i := range users {
		if match(users[i]) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}
