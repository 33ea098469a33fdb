// Package event implements the campaign Event repository using PostgreSQL.
package event

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/manesha63/electNepal-sub000/internal/adapter/postgres"
	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new event repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const eventColumns = `
    id, candidate_id,
    title, title_nepali, title_auto,
    description, description_nepali, description_auto,
    venue, event_date, created_at, updated_at`

const getByIDSQL = `SELECT` + eventColumns + `
FROM events
WHERE id = $1`

const createSQL = `
INSERT INTO events (candidate_id, title, title_nepali, description, description_nepali, venue, event_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING` + eventColumns

const updateSQL = `
UPDATE events SET
    title = $2,
    description = $3,
    venue = $4,
    event_date = $5,
    updated_at = now()
WHERE id = $1
RETURNING` + eventColumns

const listByCandidateSQL = `SELECT` + eventColumns + `
FROM events
WHERE candidate_id = $1
ORDER BY event_date DESC, id`

const listUpcomingSQL = `SELECT` + eventColumns + `
FROM events e
WHERE e.event_date >= now()
  AND EXISTS (SELECT 1 FROM candidates c WHERE c.id = e.candidate_id AND c.status = 'APPROVED')
ORDER BY e.event_date, e.id
LIMIT $1`

// GetByID returns a single event.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	e, err := scanEvent(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "event", id)
	}

	return &e, nil
}

// ListByCandidate returns all events of one candidate, newest first.
func (r *Repo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx, listByCandidateSQL, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListUpcoming returns future events of approved candidates.
func (r *Repo) ListUpcoming(ctx context.Context, limit int) ([]domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx, listUpcomingSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListUntranslated returns events with at least one bilingual field that
// still needs machine translation. Used by the backfill worker.
func (r *Repo) ListUntranslated(ctx context.Context, limit int) ([]domain.Event, error) {
	builder := sq.Select().
		Column(eventColumns).
		From("events").
		Where(sq.Or{
			sq.And{sq.NotEq{"title": ""}, sq.Eq{"title_nepali": ""}},
			sq.And{sq.NotEq{"description": ""}, sq.Eq{"description_nepali": ""}},
		}).
		OrderBy("updated_at").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build untranslated query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list untranslated: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Create inserts a new event.
func (r *Repo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	row := querier.QueryRow(ctx, createSQL,
		e.CandidateID, e.Title, e.TitleNepali, e.Description, e.DescriptionNepali, e.Venue, e.EventDate)

	created, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "event", e.CandidateID)
	}

	return &created, nil
}

// Update replaces the primary fields of an event. Nepali columns are managed
// through the bilingual repo.
func (r *Repo) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	row := querier.QueryRow(ctx, updateSQL, e.ID, e.Title, e.Description, e.Venue, e.EventDate)

	updated, err := scanEvent(row)
	if err != nil {
		return nil, postgres.MapError(err, "event", e.ID)
	}

	return &updated, nil
}

// Delete removes an event.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := querier.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "event", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.CandidateID,
		&e.Title, &e.TitleNepali, &e.TitleAuto,
		&e.Description, &e.DescriptionNepali, &e.DescriptionAuto,
		&e.Venue, &e.EventDate, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func scanEvents(rows pgx.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
