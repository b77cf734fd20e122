package handler

import (
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/msomdec/weblog/internal/domain"
	"github.com/msomdec/weblog/internal/service"
)

const (
	authCookieName     = "auth_token"
	rememberCookieName = "remember_token"

	authCookieMaxAge     = 86400      // 24 hours
	rememberCookieMaxAge = 30 * 86400 // 30 days
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth         *service.AuthService
	limiter      *service.LoginLimiter
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, limiter *service.LoginLimiter, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter, cookieSecure: cookieSecure}
}

// HandleRegister processes a JSON registration request.
// POST /api/auth/register
// Request:  {"firstname":"...","lastname":"...","alias":"...","email":"...","password":"..."}
// Response: {"user": {...}}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
		Alias     string `json:"alias"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.auth.Register(r.Context(), req.FirstName, req.LastName, req.Alias, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateAlias) {
			writeError(w, http.StatusConflict, "That alias is already taken.")
			return
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "An account with that email already exists.")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("register user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"user": toUserDTO(user),
	})
}

// HandleLogin processes a JSON login request.
// POST /api/auth/login
// Request:  {"alias":"...","password":"...","remember":true}
// Response: {"user": {...}}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many login attempts. Please wait and try again.")
		return
	}

	var req struct {
		Alias    string `json:"alias"`
		Password string `json:"password"`
		Remember bool   `json:"remember"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	res, err := h.auth.Login(r.Context(), req.Alias, req.Password, req.Remember)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			// One message for unknown alias and wrong password alike.
			writeError(w, http.StatusUnauthorized, "Invalid alias or password.")
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	setAuthCookie(w, res.Token, h.cookieSecure)
	if res.RememberToken != "" {
		setRememberCookie(w, res.RememberToken, h.cookieSecure)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": toUserDTO(res.User),
	})
}

// HandleLogout clears the session and remember cookies. The stored
// remember token is left on the user record; it simply stops being
// presented.
// POST /api/auth/logout
// Response: 204 No Content
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, authCookieName, h.cookieSecure)
	clearCookie(w, rememberCookieName, h.cookieSecure)
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the current session state.
// GET /api/auth/me
// Response: {"session": {...}} or 401
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if !sess.LoggedIn() {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session": toSessionDTO(sess),
	})
}

func setAuthCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   authCookieMaxAge,
	})
}

func setRememberCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     rememberCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   rememberCookieMaxAge,
	})
}

func clearCookie(w http.ResponseWriter, name string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
