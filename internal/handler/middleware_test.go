package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/weblog/internal/handler"
	"github.com/msomdec/weblog/internal/repository/jsonline"
	"github.com/msomdec/weblog/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests"

func newTestServices(t *testing.T) (handler.Services, *jsonline.Store) {
	t.Helper()
	dir := t.TempDir()
	store := jsonline.New(filepath.Join(dir, "data"), filepath.Join(dir, "uploads"))

	// Use cost 4 for fast tests; the limiter is generous enough to
	// stay out of the way except where a test builds its own.
	svc := handler.Services{
		Auth:        service.NewAuthService(store.Users(), testJWTSecret, 4),
		Posts:       service.NewPostService(store.Posts(), store.Users()),
		Gallery:     service.NewGalleryService(store.Gallery(), store.Files()),
		Contact:     service.NewContactService(store.ContactMessages()),
		Maintenance: service.NewMaintenanceService(store),
		Limiter:     service.NewLoginLimiter(100, 100),
	}
	return svc, store
}

func registerAndLogin(t *testing.T, auth *service.AuthService, alias string, remember bool) *service.LoginResult {
	t.Helper()
	ctx := context.Background()
	if _, err := auth.Register(ctx, "Test", "User", alias, alias+"@example.com", "password123"); err != nil {
		t.Fatalf("Register %s: %v", alias, err)
	}
	res, err := auth.Login(ctx, alias, "password123", remember)
	if err != nil {
		t.Fatalf("Login %s: %v", alias, err)
	}
	return res
}

func TestRequireAuth_ValidCookie(t *testing.T) {
	svc, _ := newTestServices(t)
	res := registerAndLogin(t, svc.Auth, "abcd", false)

	var gotAlias string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := handler.SessionFromContext(r.Context()); sess != nil {
			gotAlias = sess.Alias
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: res.Token})
	w := httptest.NewRecorder()

	handler.RequireAuth(svc.Auth, false, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotAlias != "abcd" {
		t.Fatalf("expected session alias abcd, got %q", gotAlias)
	}
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	svc, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.RequireAuth(svc.Auth, false, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_GarbageCookie(t *testing.T) {
	svc, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "not-a-token"})
	w := httptest.NewRecorder()

	handler.RequireAuth(svc.Auth, false, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_RememberTokenReplay(t *testing.T) {
	svc, _ := newTestServices(t)
	res := registerAndLogin(t, svc.Auth, "abcd", true)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Only the remember cookie is presented, as after a browser
	// restart that discarded the session cookie.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "remember_token", Value: res.RememberToken})
	w := httptest.NewRecorder()

	handler.RequireAuth(svc.Auth, false, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var refreshed bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			refreshed = true
		}
	}
	if !refreshed {
		t.Fatal("expected replay to set a fresh auth_token cookie")
	}
}

func TestRequireAdmin(t *testing.T) {
	svc, _ := newTestServices(t)

	// First registration is the admin; the second is a regular user.
	admin := registerAndLogin(t, svc.Auth, "admin", false)
	regular := registerAndLogin(t, svc.Auth, "regular", false)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := handler.RequireAdmin(svc.Auth, false, inner)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: admin.Token})
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: regular.Token})
	w = httptest.NewRecorder()
	protected.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("regular user: expected 403, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	w = httptest.NewRecorder()
	protected.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected 401, got %d", w.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	svc, _ := newTestServices(t)
	res := registerAndLogin(t, svc.Auth, "abcd", false)

	var sawSession bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSession = handler.SessionFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	})
	wrapped := handler.OptionalAuth(svc.Auth, false, inner)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous: expected 200, got %d", w.Code)
	}
	if sawSession {
		t.Fatal("anonymous: expected no session in context")
	}

	req = httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: res.Token})
	w = httptest.NewRecorder()
	wrapped.ServeHTTP(w, req)
	if !sawSession {
		t.Fatal("logged in: expected session in context")
	}
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.SecurityHeaders(inner).ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("expected DENY, got %q", got)
	}
}
