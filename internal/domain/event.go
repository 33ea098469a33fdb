package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a campaign event published by a candidate.
type Event struct {
	ID          uuid.UUID
	CandidateID uuid.UUID

	Title       string
	TitleNepali string
	TitleAuto   bool

	Description       string
	DescriptionNepali string
	DescriptionAuto   bool

	Venue     string
	EventDate time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

func (e *Event) EntityKind() EntityKind { return KindEvent }

func (e *Event) EntityID() uuid.UUID { return e.ID }

func (e *Event) BilingualFields() []BilingualField {
	return []BilingualField{
		{Name: FieldTitle, Primary: e.Title, Secondary: e.TitleNepali, Auto: e.TitleAuto},
		{Name: FieldDescription, Primary: e.Description, Secondary: e.DescriptionNepali, Auto: e.DescriptionAuto},
	}
}
