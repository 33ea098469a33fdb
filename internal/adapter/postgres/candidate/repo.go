// Package candidate implements the Candidate repository using PostgreSQL.
// Simple reads/writes use const SQL; the ballot pool query is built with
// squirrel because its predicate depends on the request.
package candidate

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/manesha63/electNepal-sub000/internal/adapter/postgres"
	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// Repo provides candidate persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new candidate repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const candidateColumns = `
    id,
    full_name, full_name_nepali, full_name_auto,
    bio, bio_nepali, bio_auto,
    education, education_nepali, education_auto,
    experience, experience_nepali, experience_auto,
    manifesto, manifesto_nepali, manifesto_auto,
    position_level, province_id, district_id, municipality_id, ward_number,
    status, created_at, updated_at`

const getByIDSQL = `SELECT` + candidateColumns + `
FROM candidates
WHERE id = $1`

const createSQL = `
INSERT INTO candidates (
    full_name, full_name_nepali,
    bio, bio_nepali,
    education, education_nepali,
    experience, experience_nepali,
    manifesto, manifesto_nepali,
    position_level, province_id, district_id, municipality_id, ward_number
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING` + candidateColumns

const updateProfileSQL = `
UPDATE candidates SET
    full_name = $2,
    bio = $3,
    education = $4,
    experience = $5,
    manifesto = $6,
    position_level = $7,
    province_id = $8,
    district_id = $9,
    municipality_id = $10,
    ward_number = $11,
    updated_at = now()
WHERE id = $1
RETURNING` + candidateColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single candidate.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	c, err := scanCandidateRow(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "candidate", id)
	}

	return &c, nil
}

// ListForBallot returns the approved candidate pool a ballot request can
// possibly rank above zero: candidates registered in the request's province
// plus all federal candidates. Finer location matching belongs to the ranker.
func (r *Repo) ListForBallot(ctx context.Context, provinceID int) ([]domain.Candidate, error) {
	builder := sq.Select().
		Column(candidateColumns).
		From("candidates").
		Where(sq.Eq{"status": domain.StatusApproved}).
		Where(sq.Or{
			sq.Eq{"province_id": provinceID},
			sq.Eq{"position_level": domain.PositionFederal},
		}).
		OrderBy("created_at", "id").
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ballot pool query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ballot pool: %w", err)
	}
	defer rows.Close()

	candidates, err := scanCandidates(rows)
	if err != nil {
		return nil, fmt.Errorf("list ballot pool: %w", err)
	}

	return candidates, nil
}

// ListUntranslated returns candidates with at least one bilingual field that
// still needs machine translation. Used by the backfill worker.
func (r *Repo) ListUntranslated(ctx context.Context, limit int) ([]domain.Candidate, error) {
	builder := sq.Select().
		Column(candidateColumns).
		From("candidates").
		Where(sq.Or{
			sq.And{sq.NotEq{"full_name": ""}, sq.Eq{"full_name_nepali": ""}},
			sq.And{sq.NotEq{"bio": ""}, sq.Eq{"bio_nepali": ""}},
			sq.And{sq.NotEq{"education": ""}, sq.Eq{"education_nepali": ""}},
			sq.And{sq.NotEq{"experience": ""}, sq.Eq{"experience_nepali": ""}},
			sq.And{sq.NotEq{"manifesto": ""}, sq.Eq{"manifesto_nepali": ""}},
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

	candidates, err := scanCandidates(rows)
	if err != nil {
		return nil, fmt.Errorf("list untranslated: %w", err)
	}

	return candidates, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new candidate profile (status defaults to PENDING).
func (r *Repo) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	row := querier.QueryRow(ctx, createSQL,
		c.FullName, c.FullNameNepali,
		c.Bio, c.BioNepali,
		c.Education, c.EducationNepali,
		c.Experience, c.ExperienceNepali,
		c.Manifesto, c.ManifestoNepali,
		c.PositionLevel, c.ProvinceID, c.DistrictID, c.MunicipalityID, c.WardNumber,
	)

	created, err := scanCandidateRow(row)
	if err != nil {
		return nil, postgres.MapError(err, "candidate", c.ID)
	}

	return &created, nil
}

// UpdateProfile replaces the author-owned primary fields and location of a
// candidate. Nepali columns and auto flags are deliberately absent: they
// belong to the bilingual repo's partial updates.
func (r *Repo) UpdateProfile(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	row := querier.QueryRow(ctx, updateProfileSQL,
		c.ID,
		c.FullName, c.Bio, c.Education, c.Experience, c.Manifesto,
		c.PositionLevel, c.ProvinceID, c.DistrictID, c.MunicipalityID, c.WardNumber,
	)

	updated, err := scanCandidateRow(row)
	if err != nil {
		return nil, postgres.MapError(err, "candidate", c.ID)
	}

	return &updated, nil
}

// SetStatus moves a candidate through the approval workflow.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.CandidateStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := querier.Exec(ctx,
		`UPDATE candidates SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return postgres.MapError(err, "candidate", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("candidate %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(s rowScanner) (domain.Candidate, error) {
	var c domain.Candidate
	err := s.Scan(
		&c.ID,
		&c.FullName, &c.FullNameNepali, &c.FullNameAuto,
		&c.Bio, &c.BioNepali, &c.BioAuto,
		&c.Education, &c.EducationNepali, &c.EducationAuto,
		&c.Experience, &c.ExperienceNepali, &c.ExperienceAuto,
		&c.Manifesto, &c.ManifestoNepali, &c.ManifestoAuto,
		&c.PositionLevel, &c.ProvinceID, &c.DistrictID, &c.MunicipalityID, &c.WardNumber,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func scanCandidateRow(row pgx.Row) (domain.Candidate, error) {
	return scanCandidate(row)
}

func scanCandidates(rows pgx.Rows) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
