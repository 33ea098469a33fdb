package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestCandidateID_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithCandidateID(context.Background(), id)

	got, ok := CandidateIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected candidate ID to be present")
	}
	if got != id {
		t.Errorf("got %s, want %s", got, id)
	}
}

func TestCandidateID_Missing(t *testing.T) {
	t.Parallel()

	if _, ok := CandidateIDFromCtx(context.Background()); ok {
		t.Error("empty context should not contain a candidate ID")
	}
}

func TestCandidateID_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithCandidateID(context.Background(), uuid.Nil)
	if _, ok := CandidateIDFromCtx(ctx); ok {
		t.Error("nil UUID should be treated as absent")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("got %q, want %q", got, "req-123")
	}

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("missing request ID should be empty, got %q", got)
	}
}
