package content

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// ---------------------------------------------------------------------------
// CandidateProfileInput
// ---------------------------------------------------------------------------

// CandidateProfileInput holds the author-supplied fields of a candidate
// profile. Nepali fields are optional; empty ones are filled by machine
// translation after the save commits.
type CandidateProfileInput struct {
	FullName       string
	FullNameNepali string

	Bio       string
	BioNepali string

	Education       string
	EducationNepali string

	Experience       string
	ExperienceNepali string

	Manifesto       string
	ManifestoNepali string

	PositionLevel  domain.PositionLevel
	ProvinceID     int
	DistrictID     int
	MunicipalityID *int
	WardNumber     *int
}

// Validate checks all fields and collects all errors.
func (i CandidateProfileInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FullName) == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	}
	if len(i.FullName) > MaxNameLen {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long (max 200)"})
	}

	if !i.PositionLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "position_level", Message: "unknown value"})
	}

	if i.ProvinceID <= 0 {
		errs = append(errs, domain.FieldError{Field: "province_id", Message: "required"})
	}
	if i.DistrictID <= 0 {
		errs = append(errs, domain.FieldError{Field: "district_id", Message: "required"})
	}
	if i.PositionLevel.IsMunicipal() || i.PositionLevel.IsWard() {
		if i.MunicipalityID == nil {
			errs = append(errs, domain.FieldError{Field: "municipality_id", Message: "required for local positions"})
		}
	}
	if i.PositionLevel.IsWard() && i.WardNumber == nil {
		errs = append(errs, domain.FieldError{Field: "ward_number", Message: "required for ward positions"})
	}
	if i.WardNumber != nil && i.MunicipalityID == nil {
		errs = append(errs, domain.FieldError{Field: "ward_number", Message: "requires municipality"})
	}

	for _, check := range []struct {
		field string
		value string
		max   int
	}{
		{"bio", i.Bio, MaxShortTextLen},
		{"education", i.Education, MaxShortTextLen},
		{"experience", i.Experience, MaxShortTextLen},
		{"manifesto", i.Manifesto, MaxLongTextLen},
	} {
		if len(check.value) > check.max {
			errs = append(errs, domain.FieldError{Field: check.field, Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CandidateProfileInput) apply(c *domain.Candidate) {
	c.FullName = strings.TrimSpace(i.FullName)
	c.FullNameNepali = strings.TrimSpace(i.FullNameNepali)
	c.Bio = strings.TrimSpace(i.Bio)
	c.BioNepali = strings.TrimSpace(i.BioNepali)
	c.Education = strings.TrimSpace(i.Education)
	c.EducationNepali = strings.TrimSpace(i.EducationNepali)
	c.Experience = strings.TrimSpace(i.Experience)
	c.ExperienceNepali = strings.TrimSpace(i.ExperienceNepali)
	c.Manifesto = strings.TrimSpace(i.Manifesto)
	c.ManifestoNepali = strings.TrimSpace(i.ManifestoNepali)
	c.PositionLevel = i.PositionLevel
	c.ProvinceID = i.ProvinceID
	c.DistrictID = i.DistrictID
	c.MunicipalityID = i.MunicipalityID
	c.WardNumber = i.WardNumber
}

// ---------------------------------------------------------------------------
// EventInput
// ---------------------------------------------------------------------------

// EventInput holds the parameters for creating or updating an event.
type EventInput struct {
	Title       string
	TitleNepali string

	Description       string
	DescriptionNepali string

	Venue     string
	EventDate time.Time
}

// Validate checks all fields and collects all errors.
func (i EventInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > MaxNameLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 200)"})
	}
	if len(i.Description) > MaxShortTextLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.EventDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "event_date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// PostInput
// ---------------------------------------------------------------------------

// PostInput holds the parameters for creating or updating a post.
type PostInput struct {
	Title       string
	TitleNepali string

	Body       string
	BodyNepali string
}

// Validate checks all fields and collects all errors.
func (i PostInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > MaxNameLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 200)"})
	}
	if strings.TrimSpace(i.Body) == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if len(i.Body) > MaxLongTextLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// SetTranslationInput
// ---------------------------------------------------------------------------

// SetTranslationInput holds a human-authored secondary-language value for one
// field of one entity.
type SetTranslationInput struct {
	Kind  domain.EntityKind
	ID    uuid.UUID
	Field string
	Text  string
}

// Validate checks all fields and collects all errors.
func (i SetTranslationInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "unknown value"})
	}
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if strings.TrimSpace(i.Field) == "" {
		errs = append(errs, domain.FieldError{Field: "field", Message: "required"})
	}
	if len(i.Text) > MaxLongTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
