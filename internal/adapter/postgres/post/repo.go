// Package post implements the campaign Post repository using PostgreSQL.
package post

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/manesha63/electNepal-sub000/internal/adapter/postgres"
	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new post repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const postColumns = `
    id, candidate_id,
    title, title_nepali, title_auto,
    body, body_nepali, body_auto,
    published_at, created_at, updated_at`

const getByIDSQL = `SELECT` + postColumns + `
FROM posts
WHERE id = $1`

const createSQL = `
INSERT INTO posts (candidate_id, title, title_nepali, body, body_nepali, published_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING` + postColumns

const updateSQL = `
UPDATE posts SET
    title = $2,
    body = $3,
    updated_at = now()
WHERE id = $1
RETURNING` + postColumns

const listByCandidateSQL = `SELECT` + postColumns + `
FROM posts
WHERE candidate_id = $1
ORDER BY published_at DESC, id`

// GetByID returns a single post.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	p, err := scanPost(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	return &p, nil
}

// ListByCandidate returns all posts of one candidate, newest first.
func (r *Repo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]domain.Post, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx, listByCandidateSQL, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListUntranslated returns posts with at least one bilingual field that
// still needs machine translation. Used by the backfill worker.
func (r *Repo) ListUntranslated(ctx context.Context, limit int) ([]domain.Post, error) {
	builder := sq.Select().
		Column(postColumns).
		From("posts").
		Where(sq.Or{
			sq.And{sq.NotEq{"title": ""}, sq.Eq{"title_nepali": ""}},
			sq.And{sq.NotEq{"body": ""}, sq.Eq{"body_nepali": ""}},
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

	return scanPosts(rows)
}

// Create inserts a new post.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	row := querier.QueryRow(ctx, createSQL,
		p.CandidateID, p.Title, p.TitleNepali, p.Body, p.BodyNepali, p.PublishedAt)

	created, err := scanPost(row)
	if err != nil {
		return nil, postgres.MapError(err, "post", p.CandidateID)
	}

	return &created, nil
}

// Update replaces the primary fields of a post. Nepali columns are managed
// through the bilingual repo.
func (r *Repo) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	row := querier.QueryRow(ctx, updateSQL, p.ID, p.Title, p.Body)

	updated, err := scanPost(row)
	if err != nil {
		return nil, postgres.MapError(err, "post", p.ID)
	}

	return &updated, nil
}

// Delete removes a post.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := querier.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanPost(row pgx.Row) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.CandidateID,
		&p.Title, &p.TitleNepali, &p.TitleAuto,
		&p.Body, &p.BodyNepali, &p.BodyAuto,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
