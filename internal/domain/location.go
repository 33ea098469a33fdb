package domain

// Nepal's administrative hierarchy: Province ⊃ District ⊃ Municipality ⊃ Ward.
// Catalog rows use the stable integer codes published by the election
// commission, not UUIDs.

// Province is a first-level administrative unit.
type Province struct {
	ID         int
	Code       string
	Name       string
	NameNepali string
}

// District is a second-level unit belonging to a province.
type District struct {
	ID         int
	ProvinceID int
	Code       string
	Name       string
	NameNepali string
}

// Municipality is a third-level unit belonging to a district. Wards are
// numbered 1..TotalWards within it and have no catalog rows of their own.
type Municipality struct {
	ID         int
	DistrictID int
	Code       string
	Name       string
	NameNepali string
	TotalWards int
}

// BallotRequest is the voter-supplied partial location tuple used to rank
// candidates. Province is mandatory; each finer level is only valid when all
// coarser levels are present. It is transient and never persisted.
type BallotRequest struct {
	ProvinceID     int
	DistrictID     *int
	MunicipalityID *int
	WardNumber     *int
}

// Validate rejects malformed tuples. Gaps in the hierarchy are an error,
// never silently coerced to the coarser prefix.
func (r BallotRequest) Validate() error {
	var errs []FieldError

	if r.ProvinceID <= 0 {
		errs = append(errs, FieldError{Field: "province", Message: "required"})
	}
	if r.DistrictID != nil && *r.DistrictID <= 0 {
		errs = append(errs, FieldError{Field: "district", Message: "must be positive"})
	}
	if r.MunicipalityID != nil {
		if *r.MunicipalityID <= 0 {
			errs = append(errs, FieldError{Field: "municipality", Message: "must be positive"})
		}
		if r.DistrictID == nil {
			errs = append(errs, FieldError{Field: "municipality", Message: "requires district"})
		}
	}
	if r.WardNumber != nil {
		if *r.WardNumber <= 0 {
			errs = append(errs, FieldError{Field: "ward", Message: "must be positive"})
		}
		if r.MunicipalityID == nil {
			errs = append(errs, FieldError{Field: "ward", Message: "requires municipality"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ResolvedLocation echoes the catalog rows matching a ballot request, for
// display alongside the ranked result.
type ResolvedLocation struct {
	Province     Province
	District     *District
	Municipality *Municipality
	WardNumber   *int
}
