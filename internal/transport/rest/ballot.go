package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/manesha63/electNepal-sub000/internal/domain"
	"github.com/manesha63/electNepal-sub000/internal/service/ballot"
)

// ballotService defines the minimal interface needed by BallotHandler.
type ballotService interface {
	MyBallot(ctx context.Context, req domain.BallotRequest, page, perPage int) (*ballot.Ballot, error)
}

// BallotHandler serves the voter-facing ballot endpoint.
type BallotHandler struct {
	svc ballotService
	log *slog.Logger
}

// NewBallotHandler creates a BallotHandler.
func NewBallotHandler(svc ballotService, logger *slog.Logger) *BallotHandler {
	return &BallotHandler{svc: svc, log: logger.With("handler", "ballot")}
}

// MyBallot handles GET /api/v1/ballot.
// Query params: province (required), district, municipality, ward, page, per_page.
func (h *BallotHandler) MyBallot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	province, err := strconv.Atoi(q.Get("province"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "province must be an integer")
		return
	}

	req := domain.BallotRequest{ProvinceID: province}
	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"district", &req.DistrictID},
		{"municipality", &req.MunicipalityID},
		{"ward", &req.WardNumber},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, p.name+" must be an integer")
			return
		}
		*p.dst = &v
	}

	page := intQueryParam(q.Get("page"), 1)
	perPage := intQueryParam(q.Get("per_page"), 0)

	result, err := h.svc.MyBallot(r.Context(), req, page, perPage)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBallotResponse(result))
}

func intQueryParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
