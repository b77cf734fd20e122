package jsonline_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/msomdec/weblog/internal/domain"
	"github.com/msomdec/weblog/internal/repository/jsonline"
)

func newTestStore(t *testing.T) (*jsonline.Store, string) {
	t.Helper()
	dir := t.TempDir()
	return jsonline.New(filepath.Join(dir, "data"), filepath.Join(dir, "uploads")), dir
}

func testUser(alias, email string) *domain.User {
	return &domain.User{
		ID:           "id-" + alias,
		Alias:        alias,
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "hashedpw",
		CreatedAt:    "2024-01-15 10:00:00",
	}
}

func TestUserRepository_Create(t *testing.T) {
	store, _ := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	user := testUser("abcd", "abcd@example.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.GetByAlias(ctx, "abcd")
	if err != nil {
		t.Fatalf("GetByAlias: %v", err)
	}
	if found.Email != "abcd@example.com" {
		t.Fatalf("expected email abcd@example.com, got %s", found.Email)
	}
}

func TestUserRepository_Create_FirstUserIsAdmin(t *testing.T) {
	store, _ := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	first := testUser("first", "first@example.com")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first: %v", err)
	}
	if !first.IsAdmin {
		t.Fatal("expected first user to be admin")
	}

	second := testUser("second", "second@example.com")
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create second: %v", err)
	}
	if second.IsAdmin {
		t.Fatal("expected second user to not be admin")
	}
}

func TestUserRepository_Create_DuplicateAlias(t *testing.T) {
	store, dir := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("abcd", "one@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.Create(ctx, testUser("abcd", "two@example.com"))
	if !errors.Is(err, domain.ErrDuplicateAlias) {
		t.Fatalf("expected ErrDuplicateAlias, got %v", err)
	}

	// The table must still contain exactly one record with that alias.
	data, err := os.ReadFile(filepath.Join(dir, "data", "users.txt"))
	if err != nil {
		t.Fatalf("read users file: %v", err)
	}
	if lines := bytes.Split(bytes.TrimSpace(data), []byte{'\n'}); len(lines) != 1 {
		t.Fatalf("expected exactly one record in the file, got %d", len(lines))
	}
	if _, err := repo.GetByEmail(ctx, "two@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected rejected user to be absent, got %v", err)
	}
}

func TestUserRepository_Create_DuplicateAliasCaseInsensitive(t *testing.T) {
	store, _ := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("Abcd", "one@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.Create(ctx, testUser("aBCD", "two@example.com"))
	if !errors.Is(err, domain.ErrDuplicateAlias) {
		t.Fatalf("expected ErrDuplicateAlias for case-insensitive match, got %v", err)
	}
}

func TestUserRepository_Create_DuplicateEmailCaseInsensitive(t *testing.T) {
	store, _ := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("usera", "Dup@Example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.Create(ctx, testUser("userb", "dup@example.COM"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail for case-insensitive match, got %v", err)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	store, _ := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetByAlias_CaseInsensitive(t *testing.T) {
	store, _ := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("MiXeD", "mixed@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.GetByAlias(ctx, "mixed")
	if err != nil {
		t.Fatalf("GetByAlias: %v", err)
	}
	if found.Alias != "MiXeD" {
		t.Fatalf("expected stored alias MiXeD, got %s", found.Alias)
	}
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	store, _ := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("abcd", "abcd@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	ghost := testUser("ghost", "ghost@example.com")
	if err := repo.Update(ctx, ghost); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Update_Isolation(t *testing.T) {
	store, dir := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	a := testUser("usera", "a@example.com")
	b := testUser("userb", "b@example.com")
	c := testUser("userc", "c@example.com")
	for _, u := range []*domain.User{a, b, c} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create %s: %v", u.Alias, err)
		}
	}

	usersPath := filepath.Join(dir, "data", "users.txt")
	before, err := os.ReadFile(usersPath)
	if err != nil {
		t.Fatalf("read users file: %v", err)
	}
	beforeLines := bytes.Split(bytes.TrimSpace(before), []byte{'\n'})
	if len(beforeLines) != 3 {
		t.Fatalf("expected 3 lines before update, got %d", len(beforeLines))
	}

	a.RememberToken = &domain.RememberToken{Token: "tok", ExpiresAt: 9999999999}
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("Update: %v", err)
	}

	after, err := os.ReadFile(usersPath)
	if err != nil {
		t.Fatalf("read users file after update: %v", err)
	}
	afterLines := bytes.Split(bytes.TrimSpace(after), []byte{'\n'})
	if len(afterLines) != 3 {
		t.Fatalf("expected 3 lines after update, got %d", len(afterLines))
	}

	// B and C must be byte-for-byte unchanged and in their original
	// positions; only A's line may differ.
	if bytes.Equal(beforeLines[0], afterLines[0]) {
		t.Fatal("expected user A's line to change")
	}
	if !bytes.Equal(beforeLines[1], afterLines[1]) {
		t.Fatal("expected user B's line to be unchanged")
	}
	if !bytes.Equal(beforeLines[2], afterLines[2]) {
		t.Fatal("expected user C's line to be unchanged")
	}
}

func TestUserRepository_GetByRememberToken(t *testing.T) {
	store, _ := newTestStore(t)
	repo := store.Users()
	ctx := context.Background()

	user := testUser("abcd", "abcd@example.com")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	user.RememberToken = &domain.RememberToken{Token: "secret-token", ExpiresAt: 9999999999}
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := repo.GetByRememberToken(ctx, "secret-token")
	if err != nil {
		t.Fatalf("GetByRememberToken: %v", err)
	}
	if found.Alias != "abcd" {
		t.Fatalf("expected alias abcd, got %s", found.Alias)
	}

	if _, err := repo.GetByRememberToken(ctx, "wrong-token"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown token, got %v", err)
	}
	if _, err := repo.GetByRememberToken(ctx, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty token, got %v", err)
	}
}
