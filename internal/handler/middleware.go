package handler

import (
	"context"
	"net/http"

	"github.com/msomdec/weblog/internal/domain"
	"github.com/msomdec/weblog/internal/service"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext extracts the authenticated session from the
// request context. Returns nil for anonymous requests.
func SessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return sess
}

// RequireAuth is middleware that protects routes requiring a logged-in
// user. It derives the session from the auth cookie (or a remember
// token replay) and injects it into the request context. Returns 401
// for anonymous requests.
func RequireAuth(auth *service.AuthService, cookieSecure bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := authenticateRequest(w, r, auth, cookieSecure)
		if !sess.LoggedIn() {
			writeError(w, http.StatusUnauthorized, "Not authenticated.")
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin protects the admin-only routes. Returns 401 for
// anonymous requests and 403 for non-admin users.
func RequireAdmin(auth *service.AuthService, cookieSecure bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := authenticateRequest(w, r, auth, cookieSecure)
		if !sess.LoggedIn() {
			writeError(w, http.StatusUnauthorized, "Not authenticated.")
			return
		}
		if !sess.Admin() {
			writeError(w, http.StatusForbidden, "Admin access required.")
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches a session when one can be derived but never
// blocks the request.
func OptionalAuth(auth *service.AuthService, cookieSecure bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := authenticateRequest(w, r, auth, cookieSecure); sess.LoggedIn() {
			r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess))
		}
		next.ServeHTTP(w, r)
	})
}

// authenticateRequest derives a session from the auth_token cookie,
// falling back to remember-token replay. A successful replay issues a
// fresh session cookie on the response. Returns nil when the request
// stays anonymous.
func authenticateRequest(w http.ResponseWriter, r *http.Request, auth *service.AuthService, cookieSecure bool) *domain.Session {
	if cookie, err := r.Cookie(authCookieName); err == nil {
		if sess, err := auth.ValidateToken(cookie.Value); err == nil {
			return sess
		}
	}

	cookie, err := r.Cookie(rememberCookieName)
	if err != nil {
		return nil
	}
	res, err := auth.LoginWithRememberToken(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	setAuthCookie(w, res.Token, cookieSecure)
	sess := res.Session
	return &sess
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
