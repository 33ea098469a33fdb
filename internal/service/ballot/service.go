// Package ballot turns a voter's location into an ordered, scored candidate
// list.
package ballot

import (
	"context"
	"log/slog"

	"github.com/manesha63/electNepal-sub000/internal/config"
	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type candidateRepo interface {
	ListForBallot(ctx context.Context, provinceID int) ([]domain.Candidate, error)
}

type locationRepo interface {
	Resolve(ctx context.Context, req domain.BallotRequest) (*domain.ResolvedLocation, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Ballot is one page of a voter's ranked candidate list, with the resolved
// location echoed for display.
type Ballot struct {
	Location   domain.ResolvedLocation
	Candidates []ScoredCandidate
	Page       int
	PerPage    int
	Total      int
}

// Service answers ballot requests.
type Service struct {
	candidates candidateRepo
	locations  locationRepo
	cfg        config.BallotConfig
	logger     *slog.Logger
}

// NewService creates a ballot Service.
func NewService(candidates candidateRepo, locations locationRepo, cfg config.BallotConfig, logger *slog.Logger) *Service {
	return &Service{
		candidates: candidates,
		locations:  locations,
		cfg:        cfg,
		logger:     logger,
	}
}

// MyBallot validates the request, resolves it against the location catalog,
// ranks the approved candidate pool and returns the requested page.
// Malformed requests fail with a validation error; they are never coerced to
// a coarser location.
func (s *Service) MyBallot(ctx context.Context, req domain.BallotRequest, page, perPage int) (*Ballot, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	location, err := s.locations.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	pool, err := s.candidates.ListForBallot(ctx, req.ProvinceID)
	if err != nil {
		return nil, err
	}

	ranked := Rank(pool, req)

	page, perPage = s.clampPage(page, perPage)
	total := len(ranked)

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	s.logger.DebugContext(ctx, "ballot ranked",
		"province_id", req.ProvinceID, "pool", len(pool), "ranked", total, "page", page)

	return &Ballot{
		Location:   *location,
		Candidates: ranked[start:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
	}, nil
}

func (s *Service) clampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = s.cfg.PageSize
	}
	if perPage > s.cfg.MaxPageSize {
		perPage = s.cfg.MaxPageSize
	}
	return page, perPage
}
