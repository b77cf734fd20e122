package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/weblog/internal/domain"
	"github.com/msomdec/weblog/internal/service"
)

const defaultPageSize = 5

// PostHandler handles post listing and creation.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleList returns one page of posts, newest first.
// GET /api/posts?limit=5&offset=0
// Response: {"posts": [...], "total": n}
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, defaultPageSize)

	posts, err := h.posts.ListNewest(r.Context(), limit, offset)
	if err != nil {
		slog.Error("list posts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	total, err := h.posts.Count(r.Context())
	if err != nil {
		slog.Error("count posts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"posts": toPostDTOs(posts),
		"total": total,
	})
}

// HandleGet returns one post by ID.
// GET /api/posts/{id}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("get post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"post": toPostDTO(post),
	})
}

// HandleCreate creates a new post for the logged-in user.
// POST /api/posts
// Request:  {"title":"...","content":"...","imagePath":"..."}
// Response: {"post": {...}}
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	var req struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		ImagePath string `json:"imagePath"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.posts.Create(r.Context(), sess.UserID, req.Title, req.Content, req.ImagePath)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"post": toPostDTO(post),
	})
}

// HandleMine returns all posts by the logged-in user, newest first.
// GET /api/me/posts
func (h *PostHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	posts, err := h.posts.ListByAuthor(r.Context(), sess.UserID)
	if err != nil {
		slog.Error("list posts by author", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"posts": toPostDTOs(posts),
	})
}

// pageParams reads limit/offset query parameters, falling back to the
// given default page size. Bad values fall back rather than erroring;
// the store clamps out-of-range pages to empty.
func pageParams(r *http.Request, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}
