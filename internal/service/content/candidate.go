package content

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// RegisterCandidate creates a new candidate profile in PENDING status and
// schedules translation of its empty Nepali fields.
func (s *Service) RegisterCandidate(ctx context.Context, input CandidateProfileInput) (*domain.Candidate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	candidate := &domain.Candidate{Status: domain.StatusPending}
	input.apply(candidate)

	if err := s.checkLocation(ctx, candidate); err != nil {
		return nil, err
	}

	var created *domain.Candidate
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.candidates.Create(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("create candidate: %w", err)
		}

		s.translator.Schedule(txCtx, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "candidate registered",
		"candidate_id", created.ID, "position_level", created.PositionLevel)

	return created, nil
}

// UpdateCandidateProfile replaces the caller's profile fields. Nepali fields
// supplied by the author are written as human translations; any left empty
// become eligible for machine translation again.
func (s *Service) UpdateCandidateProfile(ctx context.Context, candidateID uuid.UUID, input CandidateProfileInput) (*domain.Candidate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	input.apply(current)

	if err := s.checkLocation(ctx, current); err != nil {
		return nil, err
	}

	var updated *domain.Candidate
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err = s.candidates.UpdateProfile(txCtx, current)
		if err != nil {
			return fmt.Errorf("update candidate: %w", err)
		}

		// The profile update touches only primary columns; author-supplied
		// Nepali values go through the bilingual repo so the machine flag is
		// cleared for them.
		for _, f := range []struct {
			name string
			text string
			dst  *string
			auto *bool
		}{
			{domain.FieldFullName, input.FullNameNepali, &updated.FullNameNepali, &updated.FullNameAuto},
			{domain.FieldBio, input.BioNepali, &updated.BioNepali, &updated.BioAuto},
			{domain.FieldEducation, input.EducationNepali, &updated.EducationNepali, &updated.EducationAuto},
			{domain.FieldExperience, input.ExperienceNepali, &updated.ExperienceNepali, &updated.ExperienceAuto},
			{domain.FieldManifesto, input.ManifestoNepali, &updated.ManifestoNepali, &updated.ManifestoAuto},
		} {
			if f.text == "" {
				continue
			}
			if err := s.bilingual.SetSecondaryHuman(txCtx, domain.KindCandidate, updated.ID, f.name, f.text); err != nil {
				return fmt.Errorf("set %s translation: %w", f.name, err)
			}
			*f.dst = f.text
			*f.auto = false
		}

		// updated still carries the pre-existing Nepali values for fields the
		// author left empty, so Schedule sees the real persisted state.
		s.translator.Schedule(txCtx, updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// GetCandidate returns one candidate profile.
func (s *Service) GetCandidate(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	return s.candidates.GetByID(ctx, id)
}
