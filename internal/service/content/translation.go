package content

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// SetTranslation writes a human-authored Nepali value for one field of an
// entity the caller owns. An empty text clears the field, which makes it
// eligible for machine translation on the next save.
func (s *Service) SetTranslation(ctx context.Context, candidateID uuid.UUID, input SetTranslationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.checkTranslationOwnership(ctx, candidateID, input.Kind, input.ID); err != nil {
		return err
	}

	text := strings.TrimSpace(input.Text)
	return s.bilingual.SetSecondaryHuman(ctx, input.Kind, input.ID, input.Field, text)
}

func (s *Service) checkTranslationOwnership(ctx context.Context, candidateID uuid.UUID, kind domain.EntityKind, id uuid.UUID) error {
	switch kind {
	case domain.KindCandidate:
		if id != candidateID {
			return domain.ErrForbidden
		}
		return nil
	case domain.KindEvent:
		_, err := s.checkEventOwnership(ctx, candidateID, id)
		return err
	case domain.KindPost:
		_, err := s.checkPostOwnership(ctx, candidateID, id)
		return err
	default:
		return domain.NewValidationError("kind", "unknown value")
	}
}
