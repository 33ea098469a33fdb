package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
	"github.com/manesha63/electNepal-sub000/internal/service/content"
	"github.com/manesha63/electNepal-sub000/pkg/ctxutil"
)

// eventReader is the public read side of event listings.
type eventReader interface {
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Event, error)
	ListUpcoming(ctx context.Context, limit int) ([]domain.Event, error)
}

// EventHandler serves campaign event endpoints.
type EventHandler struct {
	svc    contentService
	reader eventReader
	log    *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc contentService, reader eventReader, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, reader: reader, log: logger.With("handler", "events")}
}

type eventRequest struct {
	Title             string    `json:"title"`
	TitleNepali       string    `json:"title_nepali"`
	Description       string    `json:"description"`
	DescriptionNepali string    `json:"description_nepali"`
	Venue             string    `json:"venue"`
	EventDate         time.Time `json:"event_date"`
}

func (r eventRequest) toInput() content.EventInput {
	return content.EventInput{
		Title:             r.Title,
		TitleNepali:       r.TitleNepali,
		Description:       r.Description,
		DescriptionNepali: r.DescriptionNepali,
		Venue:             r.Venue,
		EventDate:         r.EventDate,
	}
}

// Create handles POST /api/v1/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := ctxutil.CandidateIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateEvent(r.Context(), candidateID, req.toInput())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(created))
}

// Update handles PUT /api/v1/events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := ctxutil.CandidateIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateEvent(r.Context(), candidateID, eventID, req.toInput())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(updated))
}

// Delete handles DELETE /api/v1/events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := ctxutil.CandidateIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	eventID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	if err := h.svc.DeleteEvent(r.Context(), candidateID, eventID); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByCandidate handles GET /api/v1/candidates/{id}/events.
func (h *EventHandler) ListByCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	events, err := h.reader.ListByCandidate(r.Context(), candidateID)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListUpcoming handles GET /api/v1/events/upcoming.
func (h *EventHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	limit := intQueryParam(r.URL.Query().Get("limit"), 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	events, err := h.reader.ListUpcoming(r.Context(), limit)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
