// Package bilingual implements the partial-update surface for paired-language
// columns. All translatable entities (candidates, events, posts) expose their
// bilingual fields through a per-kind column registry, so the translation
// pipeline updates any of them through one repository.
//
// Field names coming from callers are resolved against the registry and never
// interpolated into SQL directly.
package bilingual

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/manesha63/electNepal-sub000/internal/adapter/postgres"
	"github.com/manesha63/electNepal-sub000/internal/domain"
)

type columns struct {
	secondary string
	auto      string
}

type entitySpec struct {
	table  string
	fields map[string]columns
}

// specs maps an entity kind to its table and bilingual column triplets.
// The primary column never appears here: this repository must not be able to
// touch author-supplied text.
var specs = map[domain.EntityKind]entitySpec{
	domain.KindCandidate: {
		table: "candidates",
		fields: map[string]columns{
			domain.FieldFullName:   {secondary: "full_name_nepali", auto: "full_name_auto"},
			domain.FieldBio:        {secondary: "bio_nepali", auto: "bio_auto"},
			domain.FieldEducation:  {secondary: "education_nepali", auto: "education_auto"},
			domain.FieldExperience: {secondary: "experience_nepali", auto: "experience_auto"},
			domain.FieldManifesto:  {secondary: "manifesto_nepali", auto: "manifesto_auto"},
		},
	},
	domain.KindEvent: {
		table: "events",
		fields: map[string]columns{
			domain.FieldTitle:       {secondary: "title_nepali", auto: "title_auto"},
			domain.FieldDescription: {secondary: "description_nepali", auto: "description_auto"},
		},
	},
	domain.KindPost: {
		table: "posts",
		fields: map[string]columns{
			domain.FieldTitle: {secondary: "title_nepali", auto: "title_auto"},
			domain.FieldBody:  {secondary: "body_nepali", auto: "body_auto"},
		},
	},
}

func resolve(kind domain.EntityKind, field string) (entitySpec, columns, error) {
	spec, ok := specs[kind]
	if !ok {
		return entitySpec{}, columns{}, fmt.Errorf("bilingual: unknown entity kind %q: %w", kind, domain.ErrValidation)
	}
	cols, ok := spec.fields[field]
	if !ok {
		return entitySpec{}, columns{}, fmt.Errorf("bilingual: %s has no field %q: %w", kind, field, domain.ErrValidation)
	}
	return spec, cols, nil
}

// Repo provides bilingual-column persistence for all translatable entities.
type Repo struct {
	q postgres.Querier
}

// New creates a bilingual repository on top of the given querier
// (normally the pgx pool).
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// FillSecondaryIfEmpty writes a machine translation into the secondary column
// and raises the auto flag, but only while the secondary column is still
// empty. The emptiness re-check and the write are a single UPDATE, so a human
// translation saved between scheduling and completion always wins. Returns
// whether the row was written.
//
// Exactly two columns are touched; concurrent edits to the primary text or
// any other field are left alone.
func (r *Repo) FillSecondaryIfEmpty(ctx context.Context, kind domain.EntityKind, id uuid.UUID, field, text string) (bool, error) {
	if text == "" {
		// The auto flag must never be raised over an empty value.
		return false, fmt.Errorf("bilingual: empty translation for %s.%s: %w", kind, field, domain.ErrValidation)
	}

	spec, cols, err := resolve(kind, field)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(
		`UPDATE %s SET %s = $1, %s = TRUE WHERE id = $2 AND %s = ''`,
		spec.table, cols.secondary, cols.auto, cols.secondary,
	)

	querier := postgres.QuerierFromCtx(ctx, r.q)
	tag, err := querier.Exec(ctx, query, text, id)
	if err != nil {
		return false, postgres.MapError(err, string(kind), id)
	}

	return tag.RowsAffected() > 0, nil
}

// Secondary reads the current secondary value and auto flag for one field.
func (r *Repo) Secondary(ctx context.Context, kind domain.EntityKind, id uuid.UUID, field string) (string, bool, error) {
	spec, cols, err := resolve(kind, field)
	if err != nil {
		return "", false, err
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE id = $1`, cols.secondary, cols.auto, spec.table)

	querier := postgres.QuerierFromCtx(ctx, r.q)

	var secondary string
	var auto bool
	if err := querier.QueryRow(ctx, query, id).Scan(&secondary, &auto); err != nil {
		return "", false, postgres.MapError(err, string(kind), id)
	}

	return secondary, auto, nil
}

// SetSecondaryHuman stores a human-authored translation (or clears it with an
// empty string) and drops the auto flag. Clearing re-arms machine translation
// for the field on the next save.
func (r *Repo) SetSecondaryHuman(ctx context.Context, kind domain.EntityKind, id uuid.UUID, field, text string) error {
	spec, cols, err := resolve(kind, field)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		`UPDATE %s SET %s = $1, %s = FALSE WHERE id = $2`,
		spec.table, cols.secondary, cols.auto,
	)

	querier := postgres.QuerierFromCtx(ctx, r.q)
	tag, err := querier.Exec(ctx, query, text, id)
	if err != nil {
		return postgres.MapError(err, string(kind), id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}

	return nil
}
