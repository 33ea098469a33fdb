package content

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

func TestService_SetCandidateStatus(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	id := uuid.New()

	var gotID uuid.UUID
	var gotStatus domain.CandidateStatus
	env.candidates.setStatusFn = func(_ context.Context, id uuid.UUID, status domain.CandidateStatus) error {
		gotID = id
		gotStatus = status
		return nil
	}

	if err := env.svc.SetCandidateStatus(context.Background(), id, domain.StatusApproved); err != nil {
		t.Fatalf("SetCandidateStatus: %v", err)
	}

	if gotID != id {
		t.Errorf("repo id = %s, want %s", gotID, id)
	}
	if gotStatus != domain.StatusApproved {
		t.Errorf("repo status = %v, want APPROVED", gotStatus)
	}
}

func TestService_SetCandidateStatus_UnknownValue(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.candidates.setStatusFn = func(context.Context, uuid.UUID, domain.CandidateStatus) error {
		t.Fatal("repo must not be called")
		return nil
	}

	err := env.svc.SetCandidateStatus(context.Background(), uuid.New(), domain.CandidateStatus("BANNED"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_SetCandidateStatus_NotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.candidates.setStatusFn = func(context.Context, uuid.UUID, domain.CandidateStatus) error {
		return domain.ErrNotFound
	}

	err := env.svc.SetCandidateStatus(context.Background(), uuid.New(), domain.StatusRejected)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
