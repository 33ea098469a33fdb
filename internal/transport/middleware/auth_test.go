package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/manesha63/electNepal-sub000/pkg/ctxutil"
)

type mockTokenValidator struct {
	validateFn func(token string) (uuid.UUID, string, error)
}

func (m *mockTokenValidator) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	return m.validateFn(token)
}

func TestAuth_ValidToken(t *testing.T) {
	t.Parallel()

	candidateID := uuid.New()
	validator := &mockTokenValidator{
		validateFn: func(token string) (uuid.UUID, string, error) {
			if token != "good-token" {
				t.Errorf("token = %q, want good-token", token)
			}
			return candidateID, "candidate", nil
		},
	}

	var gotID uuid.UUID
	var gotRole string
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = ctxutil.CandidateIDFromCtx(r.Context())
		gotRole = ctxutil.RoleFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != candidateID {
		t.Errorf("candidate ID = %v, want %v", gotID, candidateID)
	}
	if gotRole != "candidate" {
		t.Errorf("role = %q, want candidate", gotRole)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	t.Parallel()

	validator := &mockTokenValidator{
		validateFn: func(string) (uuid.UUID, string, error) {
			return uuid.Nil, "", errors.New("expired")
		},
	}

	handler := Auth(validator)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("handler must not run for an invalid token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_Anonymous(t *testing.T) {
	t.Parallel()

	validator := &mockTokenValidator{
		validateFn: func(string) (uuid.UUID, string, error) {
			t.Error("validator must not run without a token")
			return uuid.Nil, "", nil
		},
	}

	var hadIdentity bool
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadIdentity = ctxutil.CandidateIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if hadIdentity {
		t.Error("anonymous request must not carry an identity")
	}
}
