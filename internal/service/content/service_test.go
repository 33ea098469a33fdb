package content

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockCandidateRepo struct {
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	createFn        func(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	updateProfileFn func(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	setStatusFn     func(ctx context.Context, id uuid.UUID, status domain.CandidateStatus) error
}

func (m *mockCandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockCandidateRepo) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	return m.createFn(ctx, c)
}
func (m *mockCandidateRepo) UpdateProfile(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	return m.updateProfileFn(ctx, c)
}
func (m *mockCandidateRepo) SetStatus(ctx context.Context, id uuid.UUID, status domain.CandidateStatus) error {
	return m.setStatusFn(ctx, id, status)
}

type mockEventRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	createFn  func(ctx context.Context, e *domain.Event) (*domain.Event, error)
	updateFn  func(ctx context.Context, e *domain.Event) (*domain.Event, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockEventRepo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	return m.createFn(ctx, e)
}
func (m *mockEventRepo) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	return m.updateFn(ctx, e)
}
func (m *mockEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockPostRepo struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	createFn  func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	updateFn  func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockPostRepo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	return m.createFn(ctx, p)
}
func (m *mockPostRepo) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	return m.updateFn(ctx, p)
}
func (m *mockPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type humanWrite struct {
	kind  domain.EntityKind
	id    uuid.UUID
	field string
	text  string
}

type mockBilingualRepo struct {
	writes []humanWrite
	err    error
}

func (m *mockBilingualRepo) SetSecondaryHuman(_ context.Context, kind domain.EntityKind, id uuid.UUID, field, text string) error {
	m.writes = append(m.writes, humanWrite{kind: kind, id: id, field: field, text: text})
	return m.err
}

type mockLocationRepo struct {
	resolveFn func(ctx context.Context, req domain.BallotRequest) (*domain.ResolvedLocation, error)
}

func (m *mockLocationRepo) Resolve(ctx context.Context, req domain.BallotRequest) (*domain.ResolvedLocation, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, req)
	}
	return &domain.ResolvedLocation{}, nil
}

type mockTxManager struct {
	calls int
}

func (m *mockTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockScheduler struct {
	scheduled []domain.Translatable
}

func (m *mockScheduler) Schedule(_ context.Context, entity domain.Translatable) {
	m.scheduled = append(m.scheduled, entity)
}

type testEnv struct {
	candidates *mockCandidateRepo
	events     *mockEventRepo
	posts      *mockPostRepo
	bilingual  *mockBilingualRepo
	locations  *mockLocationRepo
	tx         *mockTxManager
	scheduler  *mockScheduler
	svc        *Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		candidates: &mockCandidateRepo{},
		events:     &mockEventRepo{},
		posts:      &mockPostRepo{},
		bilingual:  &mockBilingualRepo{},
		locations:  &mockLocationRepo{},
		tx:         &mockTxManager{},
		scheduler:  &mockScheduler{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.svc = NewService(logger, env.candidates, env.events, env.posts, env.bilingual, env.locations, env.tx, env.scheduler)
	return env
}

func intPtr(v int) *int { return &v }

func validProfile() CandidateProfileInput {
	return CandidateProfileInput{
		FullName:      "Sita Rai",
		Bio:           "Community organizer from Kathmandu",
		PositionLevel: domain.PositionWardChair,
		ProvinceID:    3,
		DistrictID:    27,
		MunicipalityID: intPtr(270),
		WardNumber:     intPtr(16),
	}
}

// ---------------------------------------------------------------------------
// Candidate
// ---------------------------------------------------------------------------

func TestService_RegisterCandidate(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.candidates.createFn = func(_ context.Context, c *domain.Candidate) (*domain.Candidate, error) {
		created := *c
		created.ID = uuid.New()
		return &created, nil
	}

	got, err := env.svc.RegisterCandidate(context.Background(), validProfile())
	if err != nil {
		t.Fatalf("RegisterCandidate: %v", err)
	}

	if got.Status != domain.StatusPending {
		t.Errorf("Status = %v, want PENDING", got.Status)
	}
	if env.tx.calls != 1 {
		t.Errorf("tx calls = %d, want 1", env.tx.calls)
	}
	if len(env.scheduler.scheduled) != 1 {
		t.Fatalf("scheduled = %d entities, want 1", len(env.scheduler.scheduled))
	}
	if env.scheduler.scheduled[0].EntityID() != got.ID {
		t.Error("scheduled entity is not the created candidate")
	}
}

func TestService_RegisterCandidate_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*CandidateProfileInput)
	}{
		{"missing name", func(i *CandidateProfileInput) { i.FullName = "  " }},
		{"bad position level", func(i *CandidateProfileInput) { i.PositionLevel = "SENATOR" }},
		{"missing province", func(i *CandidateProfileInput) { i.ProvinceID = 0 }},
		{"ward position without ward", func(i *CandidateProfileInput) { i.WardNumber = nil }},
		{"ward without municipality", func(i *CandidateProfileInput) {
			i.PositionLevel = domain.PositionFederal
			i.MunicipalityID = nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv()
			input := validProfile()
			tt.mutate(&input)

			_, err := env.svc.RegisterCandidate(context.Background(), input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
			if len(env.scheduler.scheduled) != 0 {
				t.Error("nothing may be scheduled for invalid input")
			}
		})
	}
}

func TestService_RegisterCandidate_UnknownLocation(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.locations.resolveFn = func(context.Context, domain.BallotRequest) (*domain.ResolvedLocation, error) {
		return nil, domain.ErrNotFound
	}

	_, err := env.svc.RegisterCandidate(context.Background(), validProfile())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if env.tx.calls != 0 {
		t.Error("no transaction should start for an unknown location")
	}
}

func TestService_UpdateCandidateProfile_HumanTranslationWins(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	env := newTestEnv()
	env.candidates.getByIDFn = func(_ context.Context, got uuid.UUID) (*domain.Candidate, error) {
		return &domain.Candidate{ID: id, Status: domain.StatusApproved}, nil
	}
	env.candidates.updateProfileFn = func(_ context.Context, c *domain.Candidate) (*domain.Candidate, error) {
		updated := *c
		return &updated, nil
	}

	input := validProfile()
	input.BioNepali = "काठमाडौंकी सामुदायिक संयोजक"

	got, err := env.svc.UpdateCandidateProfile(context.Background(), id, input)
	if err != nil {
		t.Fatalf("UpdateCandidateProfile: %v", err)
	}

	if len(env.bilingual.writes) != 1 {
		t.Fatalf("human writes = %d, want 1", len(env.bilingual.writes))
	}
	w := env.bilingual.writes[0]
	if w.field != domain.FieldBio || w.text != input.BioNepali {
		t.Errorf("human write = %+v", w)
	}
	if got.BioAuto {
		t.Error("human-translated field must not carry the machine flag")
	}

	// The scheduled snapshot must not list bio as needing translation.
	if len(env.scheduler.scheduled) != 1 {
		t.Fatalf("scheduled = %d entities, want 1", len(env.scheduler.scheduled))
	}
	for _, f := range env.scheduler.scheduled[0].BilingualFields() {
		if f.Name == domain.FieldBio && f.NeedsTranslation() {
			t.Error("bio has a human value and must not need translation")
		}
	}
}

func TestService_UpdateCandidateProfile_CreateError(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	env := newTestEnv()
	env.candidates.getByIDFn = func(context.Context, uuid.UUID) (*domain.Candidate, error) {
		return &domain.Candidate{ID: id}, nil
	}
	env.candidates.updateProfileFn = func(context.Context, *domain.Candidate) (*domain.Candidate, error) {
		return nil, errors.New("db down")
	}

	_, err := env.svc.UpdateCandidateProfile(context.Background(), id, validProfile())
	if err == nil {
		t.Fatal("expected error")
	}
}

// ---------------------------------------------------------------------------
// Event
// ---------------------------------------------------------------------------

func validEvent() EventInput {
	return EventInput{
		Title:     "Town hall in ward 16",
		Venue:     "Community center",
		EventDate: time.Now().Add(48 * time.Hour),
	}
}

func TestService_CreateEvent(t *testing.T) {
	t.Parallel()

	candidateID := uuid.New()
	env := newTestEnv()
	env.events.createFn = func(_ context.Context, e *domain.Event) (*domain.Event, error) {
		created := *e
		created.ID = uuid.New()
		return &created, nil
	}

	got, err := env.svc.CreateEvent(context.Background(), candidateID, validEvent())
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if got.CandidateID != candidateID {
		t.Errorf("CandidateID = %v, want %v", got.CandidateID, candidateID)
	}
	if len(env.scheduler.scheduled) != 1 {
		t.Errorf("scheduled = %d, want 1", len(env.scheduler.scheduled))
	}
}

func TestService_UpdateEvent_NotOwner(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.events.getByIDFn = func(_ context.Context, id uuid.UUID) (*domain.Event, error) {
		return &domain.Event{ID: id, CandidateID: uuid.New()}, nil
	}

	_, err := env.svc.UpdateEvent(context.Background(), uuid.New(), uuid.New(), validEvent())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
	if env.tx.calls != 0 {
		t.Error("no transaction should start for a foreign event")
	}
}

// ---------------------------------------------------------------------------
// Post
// ---------------------------------------------------------------------------

func TestService_CreatePost_InvalidInput(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	_, err := env.svc.CreatePost(context.Background(), uuid.New(), PostInput{Title: "No body"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestService_DeletePost_NotOwner(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.posts.getByIDFn = func(_ context.Context, id uuid.UUID) (*domain.Post, error) {
		return &domain.Post{ID: id, CandidateID: uuid.New()}, nil
	}

	err := env.svc.DeletePost(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

// ---------------------------------------------------------------------------
// Translation
// ---------------------------------------------------------------------------

func TestService_SetTranslation_OwnProfile(t *testing.T) {
	t.Parallel()

	candidateID := uuid.New()
	env := newTestEnv()

	err := env.svc.SetTranslation(context.Background(), candidateID, SetTranslationInput{
		Kind:  domain.KindCandidate,
		ID:    candidateID,
		Field: domain.FieldBio,
		Text:  "  नयाँ परिचय  ",
	})
	if err != nil {
		t.Fatalf("SetTranslation: %v", err)
	}

	if len(env.bilingual.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(env.bilingual.writes))
	}
	if env.bilingual.writes[0].text != "नयाँ परिचय" {
		t.Errorf("text = %q, want trimmed value", env.bilingual.writes[0].text)
	}
}

func TestService_SetTranslation_ForeignProfile(t *testing.T) {
	t.Parallel()

	env := newTestEnv()

	err := env.svc.SetTranslation(context.Background(), uuid.New(), SetTranslationInput{
		Kind:  domain.KindCandidate,
		ID:    uuid.New(),
		Field: domain.FieldBio,
		Text:  "x",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}

func TestService_SetTranslation_ClearReenablesMachine(t *testing.T) {
	t.Parallel()

	candidateID := uuid.New()
	env := newTestEnv()

	err := env.svc.SetTranslation(context.Background(), candidateID, SetTranslationInput{
		Kind:  domain.KindCandidate,
		ID:    candidateID,
		Field: domain.FieldBio,
		Text:  "   ",
	})
	if err != nil {
		t.Fatalf("SetTranslation: %v", err)
	}
	if env.bilingual.writes[0].text != "" {
		t.Errorf("clearing should write empty text, got %q", env.bilingual.writes[0].text)
	}
}
