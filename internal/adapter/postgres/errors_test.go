package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domain.ErrAlreadyExists},
		{"fk violation", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"check violation", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"deadline passes through", context.DeadlineExceeded, context.DeadlineExceeded},
		{"canceled passes through", context.Canceled, context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tt.in, "candidate", id)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("want nil, got %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(%v) = %v, want wrapping %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapError_IntID(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "province", 7)
	if !errors.Is(got, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", got)
	}
}

func TestMapError_UnknownWrapped(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	got := MapError(base, "candidate", uuid.Nil)
	if !errors.Is(got, base) {
		t.Errorf("unknown errors should stay unwrappable, got %v", got)
	}
}
