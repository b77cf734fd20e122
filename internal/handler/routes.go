package handler

import (
	"net/http"

	"github.com/msomdec/weblog/internal/service"
)

// Services bundles everything the HTTP surface needs.
type Services struct {
	Auth        *service.AuthService
	Posts       *service.PostService
	Gallery     *service.GalleryService
	Contact     *service.ContactService
	Maintenance *service.MaintenanceService
	Limiter     *service.LoginLimiter
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, svc Services, cookieSecure bool) {
	authHandler := NewAuthHandler(svc.Auth, svc.Limiter, cookieSecure)
	postHandler := NewPostHandler(svc.Posts)
	galleryHandler := NewGalleryHandler(svc.Gallery)
	contactHandler := NewContactHandler(svc.Contact)
	adminHandler := NewAdminHandler(svc.Maintenance)

	requireAuth := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(svc.Auth, cookieSecure, h)
	}
	requireAdmin := func(h http.HandlerFunc) http.Handler {
		return RequireAdmin(svc.Auth, cookieSecure, h)
	}
	optionalAuth := func(h http.HandlerFunc) http.Handler {
		return OptionalAuth(svc.Auth, cookieSecure, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", requireAuth(authHandler.HandleMe))

	mux.HandleFunc("GET /api/posts", postHandler.HandleList)
	mux.HandleFunc("GET /api/posts/{id}", postHandler.HandleGet)
	mux.Handle("POST /api/posts", requireAuth(postHandler.HandleCreate))
	mux.Handle("GET /api/me/posts", requireAuth(postHandler.HandleMine))

	mux.HandleFunc("GET /api/gallery", galleryHandler.HandleList)
	mux.HandleFunc("GET /api/gallery/{filename}", galleryHandler.HandleImage)
	mux.Handle("POST /api/gallery", optionalAuth(galleryHandler.HandleUpload))

	mux.HandleFunc("POST /api/contact", contactHandler.HandleSubmit)
	mux.Handle("GET /api/contact", requireAdmin(contactHandler.HandleList))

	mux.Handle("POST /api/admin/optimize", requireAdmin(adminHandler.HandleOptimize))
	mux.Handle("POST /api/admin/clear-logs", requireAdmin(adminHandler.HandleClearLogs))
}
