package rest

import (
	"time"

	"github.com/manesha63/electNepal-sub000/internal/domain"
	"github.com/manesha63/electNepal-sub000/internal/service/ballot"
)

// bilingualText is the JSON shape of one translatable attribute. The machine
// flag lets clients label auto-translated text.
type bilingualText struct {
	EN                string `json:"en"`
	NE                string `json:"ne,omitempty"`
	MachineTranslated bool   `json:"machine_translated,omitempty"`
}

func toBilingual(f domain.BilingualField) bilingualText {
	return bilingualText{EN: f.Primary, NE: f.Secondary, MachineTranslated: f.Auto}
}

type candidateResponse struct {
	ID             string                   `json:"id"`
	FullName       bilingualText            `json:"full_name"`
	Bio            bilingualText            `json:"bio"`
	Education      bilingualText            `json:"education"`
	Experience     bilingualText            `json:"experience"`
	Manifesto      bilingualText            `json:"manifesto"`
	PositionLevel  domain.PositionLevel     `json:"position_level"`
	ProvinceID     int                      `json:"province_id"`
	DistrictID     int                      `json:"district_id"`
	MunicipalityID *int                     `json:"municipality_id,omitempty"`
	WardNumber     *int                     `json:"ward_number,omitempty"`
	Status         domain.CandidateStatus   `json:"status"`
	CreatedAt      time.Time                `json:"created_at"`
}

func toCandidateResponse(c *domain.Candidate) candidateResponse {
	fields := map[string]bilingualText{}
	for _, f := range c.BilingualFields() {
		fields[f.Name] = toBilingual(f)
	}
	return candidateResponse{
		ID:             c.ID.String(),
		FullName:       fields[domain.FieldFullName],
		Bio:            fields[domain.FieldBio],
		Education:      fields[domain.FieldEducation],
		Experience:     fields[domain.FieldExperience],
		Manifesto:      fields[domain.FieldManifesto],
		PositionLevel:  c.PositionLevel,
		ProvinceID:     c.ProvinceID,
		DistrictID:     c.DistrictID,
		MunicipalityID: c.MunicipalityID,
		WardNumber:     c.WardNumber,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
	}
}

type scoredCandidateResponse struct {
	candidateResponse
	Score int `json:"relevance_score"`
}

type locationResponse struct {
	Province     provinceResponse      `json:"province"`
	District     *districtResponse     `json:"district,omitempty"`
	Municipality *municipalityResponse `json:"municipality,omitempty"`
	WardNumber   *int                  `json:"ward_number,omitempty"`
}

type provinceResponse struct {
	ID         int    `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	NameNepali string `json:"name_nepali"`
}

type districtResponse struct {
	ID         int    `json:"id"`
	ProvinceID int    `json:"province_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	NameNepali string `json:"name_nepali"`
}

type municipalityResponse struct {
	ID         int    `json:"id"`
	DistrictID int    `json:"district_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	NameNepali string `json:"name_nepali"`
	TotalWards int    `json:"total_wards"`
}

func toLocationResponse(loc domain.ResolvedLocation) locationResponse {
	out := locationResponse{
		Province: provinceResponse(loc.Province),
		WardNumber: loc.WardNumber,
	}
	if loc.District != nil {
		d := districtResponse(*loc.District)
		out.District = &d
	}
	if loc.Municipality != nil {
		m := municipalityResponse(*loc.Municipality)
		out.Municipality = &m
	}
	return out
}

type ballotResponse struct {
	Location   locationResponse          `json:"location"`
	Candidates []scoredCandidateResponse `json:"candidates"`
	Page       int                       `json:"page"`
	PerPage    int                       `json:"per_page"`
	Total      int                       `json:"total"`
}

func toBallotResponse(b *ballot.Ballot) ballotResponse {
	out := ballotResponse{
		Location:   toLocationResponse(b.Location),
		Candidates: make([]scoredCandidateResponse, 0, len(b.Candidates)),
		Page:       b.Page,
		PerPage:    b.PerPage,
		Total:      b.Total,
	}
	for i := range b.Candidates {
		out.Candidates = append(out.Candidates, scoredCandidateResponse{
			candidateResponse: toCandidateResponse(&b.Candidates[i].Candidate),
			Score:             b.Candidates[i].Score,
		})
	}
	return out
}

type eventResponse struct {
	ID          string        `json:"id"`
	CandidateID string        `json:"candidate_id"`
	Title       bilingualText `json:"title"`
	Description bilingualText `json:"description"`
	Venue       string        `json:"venue"`
	EventDate   time.Time     `json:"event_date"`
}

func toEventResponse(e *domain.Event) eventResponse {
	fields := map[string]bilingualText{}
	for _, f := range e.BilingualFields() {
		fields[f.Name] = toBilingual(f)
	}
	return eventResponse{
		ID:          e.ID.String(),
		CandidateID: e.CandidateID.String(),
		Title:       fields[domain.FieldTitle],
		Description: fields[domain.FieldDescription],
		Venue:       e.Venue,
		EventDate:   e.EventDate,
	}
}

type postResponse struct {
	ID          string        `json:"id"`
	CandidateID string        `json:"candidate_id"`
	Title       bilingualText `json:"title"`
	Body        bilingualText `json:"body"`
	PublishedAt time.Time     `json:"published_at"`
}

func toPostResponse(p *domain.Post) postResponse {
	fields := map[string]bilingualText{}
	for _, f := range p.BilingualFields() {
		fields[f.Name] = toBilingual(f)
	}
	return postResponse{
		ID:          p.ID.String(),
		CandidateID: p.CandidateID.String(),
		Title:       fields[domain.FieldTitle],
		Body:        fields[domain.FieldBody],
		PublishedAt: p.PublishedAt,
	}
}
