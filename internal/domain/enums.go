package domain

// PositionLevel is the office a candidate is running for. It bounds which
// location levels are meaningful when ranking the candidate for a ballot.
type PositionLevel string

const (
	PositionFederal     PositionLevel = "FEDERAL"
	PositionProvincial  PositionLevel = "PROVINCIAL"
	PositionMayor       PositionLevel = "MAYOR"
	PositionDeputyMayor PositionLevel = "DEPUTY_MAYOR"
	PositionWardChair   PositionLevel = "WARD_CHAIR"
	PositionWardMember  PositionLevel = "WARD_MEMBER"
)

func (p PositionLevel) String() string { return string(p) }

func (p PositionLevel) IsValid() bool {
	switch p {
	case PositionFederal, PositionProvincial, PositionMayor, PositionDeputyMayor,
		PositionWardChair, PositionWardMember:
		return true
	}
	return false
}

// IsFederal reports whether the seat is contested nationwide.
func (p PositionLevel) IsFederal() bool { return p == PositionFederal }

// IsProvincial reports whether the seat is contested province-wide.
func (p PositionLevel) IsProvincial() bool { return p == PositionProvincial }

// IsMunicipal reports whether the seat is scoped to a single municipality.
func (p PositionLevel) IsMunicipal() bool {
	return p == PositionMayor || p == PositionDeputyMayor
}

// IsWard reports whether the seat is scoped to a single ward.
func (p PositionLevel) IsWard() bool {
	return p == PositionWardChair || p == PositionWardMember
}

// CandidateStatus is the admin approval state of a candidate profile.
type CandidateStatus string

const (
	StatusPending  CandidateStatus = "PENDING"
	StatusApproved CandidateStatus = "APPROVED"
	StatusRejected CandidateStatus = "REJECTED"
)

func (s CandidateStatus) String() string { return string(s) }

func (s CandidateStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// EntityKind identifies the kind of translatable entity. It selects the
// column registry used for partial bilingual updates.
type EntityKind string

const (
	KindCandidate EntityKind = "CANDIDATE"
	KindEvent     EntityKind = "EVENT"
	KindPost      EntityKind = "POST"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case KindCandidate, KindEvent, KindPost:
		return true
	}
	return false
}

// Language codes used by the bilingual pipeline.
const (
	LangEnglish = "en"
	LangNepali  = "ne"
)
