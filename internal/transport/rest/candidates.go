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

// contentService defines the minimal interface needed by the content
// handlers.
type contentService interface {
	RegisterCandidate(ctx context.Context, input content.CandidateProfileInput) (*domain.Candidate, error)
	UpdateCandidateProfile(ctx context.Context, candidateID uuid.UUID, input content.CandidateProfileInput) (*domain.Candidate, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	SetTranslation(ctx context.Context, candidateID uuid.UUID, input content.SetTranslationInput) error

	CreateEvent(ctx context.Context, candidateID uuid.UUID, input content.EventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, candidateID, eventID uuid.UUID, input content.EventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, candidateID, eventID uuid.UUID) error

	CreatePost(ctx context.Context, candidateID uuid.UUID, input content.PostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, candidateID, postID uuid.UUID, input content.PostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, candidateID, postID uuid.UUID) error
}

// CandidateHandler serves candidate profile endpoints.
type CandidateHandler struct {
	svc contentService
	log *slog.Logger
}

// NewCandidateHandler creates a CandidateHandler.
func NewCandidateHandler(svc contentService, logger *slog.Logger) *CandidateHandler {
	return &CandidateHandler{svc: svc, log: logger.With("handler", "candidates")}
}

type candidateProfileRequest struct {
	FullName       string `json:"full_name"`
	FullNameNepali string `json:"full_name_nepali"`

	Bio       string `json:"bio"`
	BioNepali string `json:"bio_nepali"`

	Education       string `json:"education"`
	EducationNepali string `json:"education_nepali"`

	Experience       string `json:"experience"`
	ExperienceNepali string `json:"experience_nepali"`

	Manifesto       string `json:"manifesto"`
	ManifestoNepali string `json:"manifesto_nepali"`

	PositionLevel  string `json:"position_level"`
	ProvinceID     int    `json:"province_id"`
	DistrictID     int    `json:"district_id"`
	MunicipalityID *int   `json:"municipality_id"`
	WardNumber     *int   `json:"ward_number"`
}

func (r candidateProfileRequest) toInput() content.CandidateProfileInput {
	return content.CandidateProfileInput{
		FullName:         r.FullName,
		FullNameNepali:   r.FullNameNepali,
		Bio:              r.Bio,
		BioNepali:        r.BioNepali,
		Education:        r.Education,
		EducationNepali:  r.EducationNepali,
		Experience:       r.Experience,
		ExperienceNepali: r.ExperienceNepali,
		Manifesto:        r.Manifesto,
		ManifestoNepali:  r.ManifestoNepali,
		PositionLevel:    domain.PositionLevel(r.PositionLevel),
		ProvinceID:       r.ProvinceID,
		DistrictID:       r.DistrictID,
		MunicipalityID:   r.MunicipalityID,
		WardNumber:       r.WardNumber,
	}
}

// Register handles POST /api/v1/candidates.
func (h *CandidateHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req candidateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.RegisterCandidate(r.Context(), req.toInput())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCandidateResponse(created))
}

// Get handles GET /api/v1/candidates/{id}.
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	candidate, err := h.svc.GetCandidate(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCandidateResponse(candidate))
}

// UpdateMe handles PUT /api/v1/candidates/me.
func (h *CandidateHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := ctxutil.CandidateIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req candidateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateCandidateProfile(r.Context(), candidateID, req.toInput())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCandidateResponse(updated))
}

type setTranslationRequest struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Field string `json:"field"`
	Text  string `json:"text"`
}

// SetTranslation handles PUT /api/v1/translations.
func (h *CandidateHandler) SetTranslation(w http.ResponseWriter, r *http.Request) {
	candidateID, ok := ctxutil.CandidateIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req setTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entityID, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entity id")
		return
	}

	err = h.svc.SetTranslation(r.Context(), candidateID, content.SetTranslationInput{
		Kind:  domain.EntityKind(req.Kind),
		ID:    entityID,
		Field: req.Field,
		Text:  req.Text,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
