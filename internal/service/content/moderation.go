package content

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// SetCandidateStatus moves a candidate through the approval workflow. Only
// approved candidates appear on ballots; the caller is expected to be an
// administrator (enforced at the transport layer).
func (s *Service) SetCandidateStatus(ctx context.Context, id uuid.UUID, status domain.CandidateStatus) error {
	if !status.IsValid() {
		return domain.NewValidationError("status", "unknown value")
	}

	if err := s.candidates.SetStatus(ctx, id, status); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "candidate status changed",
		slog.String("candidate_id", id.String()),
		slog.String("status", status.String()),
	)
	return nil
}
