package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// CreateEvent creates a campaign event for the calling candidate and
// schedules translation of its empty Nepali fields.
func (s *Service) CreateEvent(ctx context.Context, candidateID uuid.UUID, input EventInput) (*domain.Event, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	event := &domain.Event{
		CandidateID:       candidateID,
		Title:             strings.TrimSpace(input.Title),
		TitleNepali:       strings.TrimSpace(input.TitleNepali),
		Description:       strings.TrimSpace(input.Description),
		DescriptionNepali: strings.TrimSpace(input.DescriptionNepali),
		Venue:             strings.TrimSpace(input.Venue),
		EventDate:         input.EventDate,
	}

	var created *domain.Event
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.events.Create(txCtx, event)
		if err != nil {
			return fmt.Errorf("create event: %w", err)
		}

		s.translator.Schedule(txCtx, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateEvent replaces the primary fields of an event the caller owns.
// Author-supplied Nepali values are written as human translations.
func (s *Service) UpdateEvent(ctx context.Context, candidateID, eventID uuid.UUID, input EventInput) (*domain.Event, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.checkEventOwnership(ctx, candidateID, eventID)
	if err != nil {
		return nil, err
	}

	current.Title = strings.TrimSpace(input.Title)
	current.Description = strings.TrimSpace(input.Description)
	current.Venue = strings.TrimSpace(input.Venue)
	current.EventDate = input.EventDate

	var updated *domain.Event
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err = s.events.Update(txCtx, current)
		if err != nil {
			return fmt.Errorf("update event: %w", err)
		}

		for _, f := range []struct {
			name string
			text string
			dst  *string
			auto *bool
		}{
			{domain.FieldTitle, strings.TrimSpace(input.TitleNepali), &updated.TitleNepali, &updated.TitleAuto},
			{domain.FieldDescription, strings.TrimSpace(input.DescriptionNepali), &updated.DescriptionNepali, &updated.DescriptionAuto},
		} {
			if f.text == "" {
				continue
			}
			if err := s.bilingual.SetSecondaryHuman(txCtx, domain.KindEvent, updated.ID, f.name, f.text); err != nil {
				return fmt.Errorf("set %s translation: %w", f.name, err)
			}
			*f.dst = f.text
			*f.auto = false
		}

		s.translator.Schedule(txCtx, updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteEvent removes an event the caller owns.
func (s *Service) DeleteEvent(ctx context.Context, candidateID, eventID uuid.UUID) error {
	if _, err := s.checkEventOwnership(ctx, candidateID, eventID); err != nil {
		return err
	}
	return s.events.Delete(ctx, eventID)
}
