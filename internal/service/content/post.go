package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// CreatePost publishes a campaign post for the calling candidate and
// schedules translation of its empty Nepali fields.
func (s *Service) CreatePost(ctx context.Context, candidateID uuid.UUID, input PostInput) (*domain.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	post := &domain.Post{
		CandidateID: candidateID,
		Title:       strings.TrimSpace(input.Title),
		TitleNepali: strings.TrimSpace(input.TitleNepali),
		Body:        strings.TrimSpace(input.Body),
		BodyNepali:  strings.TrimSpace(input.BodyNepali),
		PublishedAt: time.Now(),
	}

	var created *domain.Post
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.posts.Create(txCtx, post)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}

		s.translator.Schedule(txCtx, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdatePost replaces the primary fields of a post the caller owns.
// Author-supplied Nepali values are written as human translations.
func (s *Service) UpdatePost(ctx context.Context, candidateID, postID uuid.UUID, input PostInput) (*domain.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.checkPostOwnership(ctx, candidateID, postID)
	if err != nil {
		return nil, err
	}

	current.Title = strings.TrimSpace(input.Title)
	current.Body = strings.TrimSpace(input.Body)

	var updated *domain.Post
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err = s.posts.Update(txCtx, current)
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}

		for _, f := range []struct {
			name string
			text string
			dst  *string
			auto *bool
		}{
			{domain.FieldTitle, strings.TrimSpace(input.TitleNepali), &updated.TitleNepali, &updated.TitleAuto},
			{domain.FieldBody, strings.TrimSpace(input.BodyNepali), &updated.BodyNepali, &updated.BodyAuto},
		} {
			if f.text == "" {
				continue
			}
			if err := s.bilingual.SetSecondaryHuman(txCtx, domain.KindPost, updated.ID, f.name, f.text); err != nil {
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

// DeletePost removes a post the caller owns.
func (s *Service) DeletePost(ctx context.Context, candidateID, postID uuid.UUID) error {
	if _, err := s.checkPostOwnership(ctx, candidateID, postID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, postID)
}
