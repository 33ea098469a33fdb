package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a campaign update written by a candidate.
type Post struct {
	ID          uuid.UUID
	CandidateID uuid.UUID

	Title       string
	TitleNepali string
	TitleAuto   bool

	Body       string
	BodyNepali string
	BodyAuto   bool

	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const FieldBody = "body"

func (p *Post) EntityKind() EntityKind { return KindPost }

func (p *Post) EntityID() uuid.UUID { return p.ID }

func (p *Post) BilingualFields() []BilingualField {
	return []BilingualField{
		{Name: FieldTitle, Primary: p.Title, Secondary: p.TitleNepali, Auto: p.TitleAuto},
		{Name: FieldBody, Primary: p.Body, Secondary: p.BodyNepali, Auto: p.BodyAuto},
	}
}
