// Package content implements the candidate-facing edit surface: profile,
// event and post writes, plus human translation edits. Every successful write
// hands the saved entity to the translation orchestrator inside the same
// transaction, so machine translation starts only after the write is durable.
package content

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	MaxNameLen      = 200
	MaxShortTextLen = 2000
	MaxLongTextLen  = 20000
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type candidateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	UpdateProfile(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.CandidateStatus) error
}

type eventRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bilingualRepo interface {
	SetSecondaryHuman(ctx context.Context, kind domain.EntityKind, id uuid.UUID, field, text string) error
}

type locationRepo interface {
	Resolve(ctx context.Context, req domain.BallotRequest) (*domain.ResolvedLocation, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type translationScheduler interface {
	Schedule(ctx context.Context, entity domain.Translatable)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the content business logic.
type Service struct {
	log        *slog.Logger
	candidates candidateRepo
	events     eventRepo
	posts      postRepo
	bilingual  bilingualRepo
	locations  locationRepo
	tx         txManager
	translator translationScheduler
}

// NewService creates a new Content service.
func NewService(
	logger *slog.Logger,
	candidates candidateRepo,
	events eventRepo,
	posts postRepo,
	bilingual bilingualRepo,
	locations locationRepo,
	tx txManager,
	translator translationScheduler,
) *Service {
	return &Service{
		log:        logger.With("service", "content"),
		candidates: candidates,
		events:     events,
		posts:      posts,
		bilingual:  bilingual,
		locations:  locations,
		tx:         tx,
		translator: translator,
	}
}

// ---------------------------------------------------------------------------
// Ownership and location helpers (private)
// ---------------------------------------------------------------------------

func (s *Service) checkEventOwnership(ctx context.Context, candidateID, eventID uuid.UUID) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CandidateID != candidateID {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *Service) checkPostOwnership(ctx context.Context, candidateID, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.CandidateID != candidateID {
		return nil, domain.ErrForbidden
	}
	return post, nil
}

// checkLocation validates a candidate's declared location against the
// catalog, reusing the ballot request hierarchy rules.
func (s *Service) checkLocation(ctx context.Context, c *domain.Candidate) error {
	req := domain.BallotRequest{
		ProvinceID:     c.ProvinceID,
		MunicipalityID: c.MunicipalityID,
		WardNumber:     c.WardNumber,
	}
	if c.DistrictID != 0 {
		d := c.DistrictID
		req.DistrictID = &d
	}
	if err := req.Validate(); err != nil {
		return err
	}
	_, err := s.locations.Resolve(ctx, req)
	return err
}
