package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
	"github.com/manesha63/electNepal-sub000/internal/service/content"
	"github.com/manesha63/electNepal-sub000/pkg/ctxutil"
)

// postReader is the public read side of post listings.
type postReader interface {
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Post, error)
}

// PostHandler serves campaign post endpoints.
type PostHandler struct {
	svc    contentService
	reader postReader
	log    *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc contentService, reader postReader, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, reader: reader, log: logger.With("handler", "posts")}
}

type postRequest struct {
	Title       string `json:"title"`
	TitleNepali string `json:"title_nepali"`
	Body        string `json:"body"`
	BodyNepali  string `json:"body_nepali"`
}

func (r postRequest) toInput() content.PostInput {
	return content.PostInput{
		Title:       r.Title,
		TitleNepali: r.TitleNepali,
		Body:        r.Body,
		BodyNepali:  r.BodyNepali,
	}
}

// Create handles POST /api/v1/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := ctxutil.CandidateIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreatePost(r.Context(), candidateID, req.toInput())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(created))
}

// Update handles PUT /api/v1/posts/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := ctxutil.CandidateIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdatePost(r.Context(), candidateID, postID, req.toInput())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(updated))
}

// Delete handles DELETE /api/v1/posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := ctxutil.CandidateIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.svc.DeletePost(r.Context(), candidateID, postID); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByCandidate handles GET /api/v1/candidates/{id}/posts.
func (h *PostHandler) ListByCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	posts, err := h.reader.ListByCandidate(r.Context(), candidateID)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	out := make([]postResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
