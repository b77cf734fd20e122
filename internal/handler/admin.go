package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/weblog/internal/service"
)

// AdminHandler exposes the maintenance operations to admins.
type AdminHandler struct {
	maintenance *service.MaintenanceService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(maintenance *service.MaintenanceService) *AdminHandler {
	return &AdminHandler{maintenance: maintenance}
}

// HandleOptimize rewrites the data files keeping only lines that parse.
// POST /api/admin/optimize
// Response: {"kept": n, "dropped": n}
func (h *AdminHandler) HandleOptimize(w http.ResponseWriter, r *http.Request) {
	report, err := h.maintenance.OptimizeData(r.Context())
	if err != nil {
		slog.Error("optimize data files", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"kept":    report.Kept,
		"dropped": report.Dropped,
	})
}

// HandleClearLogs truncates the log files in the data directory.
// POST /api/admin/clear-logs
// Response: {"cleared": n}
func (h *AdminHandler) HandleClearLogs(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.maintenance.ClearLogs(r.Context())
	if err != nil {
		slog.Error("clear log files", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cleared": cleared,
	})
}
