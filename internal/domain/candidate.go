package domain

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is an election candidate profile. Free-text attributes come in
// English/Nepali pairs; the English side is authored by the candidate and the
// Nepali side is either human-supplied or machine-translated (X + XNepali +
// XAuto triplets).
type Candidate struct {
	ID uuid.UUID

	FullName       string
	FullNameNepali string
	FullNameAuto   bool

	Bio       string
	BioNepali string
	BioAuto   bool

	Education       string
	EducationNepali string
	EducationAuto   bool

	Experience       string
	ExperienceNepali string
	ExperienceAuto   bool

	Manifesto       string
	ManifestoNepali string
	ManifestoAuto   bool

	PositionLevel  PositionLevel
	ProvinceID     int
	DistrictID     int
	MunicipalityID *int
	WardNumber     *int

	Status    CandidateStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Candidate field names shared by the orchestrator and the bilingual repo
// column registry.
const (
	FieldFullName   = "full_name"
	FieldBio        = "bio"
	FieldEducation  = "education"
	FieldExperience = "experience"
	FieldManifesto  = "manifesto"
)

func (c *Candidate) EntityKind() EntityKind { return KindCandidate }

func (c *Candidate) EntityID() uuid.UUID { return c.ID }

func (c *Candidate) BilingualFields() []BilingualField {
	return []BilingualField{
		{Name: FieldFullName, Primary: c.FullName, Secondary: c.FullNameNepali, Auto: c.FullNameAuto},
		{Name: FieldBio, Primary: c.Bio, Secondary: c.BioNepali, Auto: c.BioAuto},
		{Name: FieldEducation, Primary: c.Education, Secondary: c.EducationNepali, Auto: c.EducationAuto},
		{Name: FieldExperience, Primary: c.Experience, Secondary: c.ExperienceNepali, Auto: c.ExperienceAuto},
		{Name: FieldManifesto, Primary: c.Manifesto, Secondary: c.ManifestoNepali, Auto: c.ManifestoAuto},
	}
}

// IsApproved reports whether the profile passed admin review.
func (c *Candidate) IsApproved() bool { return c.Status == StatusApproved }
