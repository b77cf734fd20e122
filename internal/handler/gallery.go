package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/msomdec/weblog/internal/domain"
	"github.com/msomdec/weblog/internal/service"
)

// GalleryHandler handles gallery listing, upload, and image serving.
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// HandleList returns one page of gallery items, newest first.
// GET /api/gallery?limit=12&offset=0
func (h *GalleryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 12)

	items, err := h.gallery.ListNewest(r.Context(), limit, offset)
	if err != nil {
		slog.Error("list gallery", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"images": toGalleryItemDTOs(items),
	})
}

// HandleUpload processes a multipart image upload. Logged-in users are
// recorded by alias; visitors are recorded as anonymous.
// POST /api/gallery, field "image"
func (h *GalleryHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	// 5MB image limit plus form overhead.
	if err := r.ParseMultipartForm(6 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "File too large.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file provided.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read upload", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	uploadedBy := ""
	if sess := SessionFromContext(r.Context()); sess.LoggedIn() {
		uploadedBy = sess.Alias
	}

	item, err := h.gallery.Upload(r.Context(), uploadedBy, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("upload gallery image", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"image": toGalleryItemDTO(*item),
	})
}

// HandleImage serves the stored bytes for a gallery filename.
// GET /api/gallery/{filename}
func (h *GalleryHandler) HandleImage(w http.ResponseWriter, r *http.Request) {
	data, err := h.gallery.GetImage(r.Context(), r.PathValue("filename"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Image not found.")
			return
		}
		slog.Error("get gallery image", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
