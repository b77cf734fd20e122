package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/weblog/internal/domain"
	"github.com/msomdec/weblog/internal/service"
)

// ContactHandler handles the contact form.
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// HandleSubmit records a contact form submission.
// POST /api/contact
// Request: {"name":"...","email":"...","message":"..."}
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	msg, err := h.contact.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("submit contact message", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": toContactMessageDTO(*msg),
	})
}

// HandleList returns contact messages for admins, newest first.
// GET /api/contact?limit=20&offset=0
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r, 20)

	msgs, err := h.contact.ListNewest(r.Context(), limit, offset)
	if err != nil {
		slog.Error("list contact messages", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"messages": toContactMessageDTOs(msgs),
	})
}
