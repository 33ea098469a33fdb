package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
	"github.com/manesha63/electNepal-sub000/internal/transport/middleware"
)

// moderationService defines the minimal interface needed by AdminHandler.
type moderationService interface {
	SetCandidateStatus(ctx context.Context, id uuid.UUID, status domain.CandidateStatus) error
}

// AdminHandler serves the moderation endpoints. Tokens for the admin role
// are issued out of band.
type AdminHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc moderationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetCandidateStatus handles PATCH /api/v1/admin/candidates/{id}/status.
func (h *AdminHandler) SetCandidateStatus(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetCandidateStatus(r.Context(), id, domain.CandidateStatus(req.Status)); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
