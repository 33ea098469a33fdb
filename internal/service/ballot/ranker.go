package ballot

import (
	"sort"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// Relevance scores. Higher means the candidate's seat is more specific to the
// voter's location.
const (
	ScoreWard         = 5
	ScoreMunicipality = 4
	ScoreDistrict     = 3
	ScoreProvince     = 2
	ScoreFederal      = 1
	ScoreExcluded     = 0
)

// ScoredCandidate pairs a candidate with its relevance score for one request.
type ScoredCandidate struct {
	Candidate domain.Candidate
	Score     int
}

// Score computes the relevance of one candidate for a ballot request. Rules
// are evaluated top-down and the first match wins. Candidate location fields
// missing relative to the declared position level never match; they downgrade
// the score instead of failing.
func Score(c *domain.Candidate, req domain.BallotRequest) int {
	switch {
	case c.PositionLevel.IsWard() &&
		req.MunicipalityID != nil && c.MunicipalityID != nil &&
		*c.MunicipalityID == *req.MunicipalityID &&
		req.WardNumber != nil && c.WardNumber != nil &&
		*c.WardNumber == *req.WardNumber:
		return ScoreWard

	case c.PositionLevel.IsMunicipal() &&
		req.MunicipalityID != nil && c.MunicipalityID != nil &&
		*c.MunicipalityID == *req.MunicipalityID:
		return ScoreMunicipality

	case req.DistrictID != nil && c.DistrictID == *req.DistrictID:
		return ScoreDistrict

	case c.PositionLevel.IsProvincial() && c.ProvinceID == req.ProvinceID:
		return ScoreProvince

	case c.PositionLevel.IsFederal():
		return ScoreFederal

	default:
		return ScoreExcluded
	}
}

// Rank scores each candidate, drops those scoring zero, and returns the rest
// in a total order: score descending, approved candidates before others, then
// name and finally id so that identical input always produces identical
// output.
func Rank(pool []domain.Candidate, req domain.BallotRequest) []ScoredCandidate {
	ranked := make([]ScoredCandidate, 0, len(pool))
	for _, c := range pool {
		score := Score(&c, req)
		if score == ScoreExcluded {
			continue
		}
		ranked = append(ranked, ScoredCandidate{Candidate: c, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if aOK, bOK := a.Candidate.IsApproved(), b.Candidate.IsApproved(); aOK != bOK {
			return aOK
		}
		if a.Candidate.FullName != b.Candidate.FullName {
			return a.Candidate.FullName < b.Candidate.FullName
		}
		return a.Candidate.ID.String() < b.Candidate.ID.String()
	})

	return ranked
}
