// Package location implements the read-only administrative catalog repository.
// The catalog is seeded by migrations and changes only between election
// cycles, so every operation is a plain read.
package location

import (
	"context"
	"fmt"

	postgres "github.com/manesha63/electNepal-sub000/internal/adapter/postgres"
	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// Repo provides catalog reads backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new location repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const (
	provinceByIDSQL = `SELECT id, code, name, name_nepali FROM provinces WHERE id = $1`

	districtByIDSQL = `SELECT id, province_id, code, name, name_nepali FROM districts WHERE id = $1`

	municipalityByIDSQL = `SELECT id, district_id, code, name, name_nepali, total_wards
FROM municipalities WHERE id = $1`

	listProvincesSQL = `SELECT id, code, name, name_nepali FROM provinces ORDER BY id`

	listDistrictsSQL = `SELECT id, province_id, code, name, name_nepali
FROM districts WHERE province_id = $1 ORDER BY id`

	listMunicipalitiesSQL = `SELECT id, district_id, code, name, name_nepali, total_wards
FROM municipalities WHERE district_id = $1 ORDER BY id`
)

// GetProvince returns one province.
func (r *Repo) GetProvince(ctx context.Context, id int) (*domain.Province, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var p domain.Province
	err := querier.QueryRow(ctx, provinceByIDSQL, id).
		Scan(&p.ID, &p.Code, &p.Name, &p.NameNepali)
	if err != nil {
		return nil, postgres.MapError(err, "province", id)
	}

	return &p, nil
}

// GetDistrict returns one district.
func (r *Repo) GetDistrict(ctx context.Context, id int) (*domain.District, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var d domain.District
	err := querier.QueryRow(ctx, districtByIDSQL, id).
		Scan(&d.ID, &d.ProvinceID, &d.Code, &d.Name, &d.NameNepali)
	if err != nil {
		return nil, postgres.MapError(err, "district", id)
	}

	return &d, nil
}

// GetMunicipality returns one municipality.
func (r *Repo) GetMunicipality(ctx context.Context, id int) (*domain.Municipality, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	var m domain.Municipality
	err := querier.QueryRow(ctx, municipalityByIDSQL, id).
		Scan(&m.ID, &m.DistrictID, &m.Code, &m.Name, &m.NameNepali, &m.TotalWards)
	if err != nil {
		return nil, postgres.MapError(err, "municipality", id)
	}

	return &m, nil
}

// ListProvinces returns all provinces ordered by their catalog code.
func (r *Repo) ListProvinces(ctx context.Context) ([]domain.Province, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx, listProvincesSQL)
	if err != nil {
		return nil, fmt.Errorf("list provinces: %w", err)
	}
	defer rows.Close()

	var provinces []domain.Province
	for rows.Next() {
		var p domain.Province
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.NameNepali); err != nil {
			return nil, fmt.Errorf("list provinces: %w", err)
		}
		provinces = append(provinces, p)
	}
	return provinces, rows.Err()
}

// ListDistricts returns the districts of one province.
func (r *Repo) ListDistricts(ctx context.Context, provinceID int) ([]domain.District, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx, listDistrictsSQL, provinceID)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	defer rows.Close()

	var districts []domain.District
	for rows.Next() {
		var d domain.District
		if err := rows.Scan(&d.ID, &d.ProvinceID, &d.Code, &d.Name, &d.NameNepali); err != nil {
			return nil, fmt.Errorf("list districts: %w", err)
		}
		districts = append(districts, d)
	}
	return districts, rows.Err()
}

// ListMunicipalities returns the municipalities of one district.
func (r *Repo) ListMunicipalities(ctx context.Context, districtID int) ([]domain.Municipality, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	rows, err := querier.Query(ctx, listMunicipalitiesSQL, districtID)
	if err != nil {
		return nil, fmt.Errorf("list municipalities: %w", err)
	}
	defer rows.Close()

	var municipalities []domain.Municipality
	for rows.Next() {
		var m domain.Municipality
		if err := rows.Scan(&m.ID, &m.DistrictID, &m.Code, &m.Name, &m.NameNepali, &m.TotalWards); err != nil {
			return nil, fmt.Errorf("list municipalities: %w", err)
		}
		municipalities = append(municipalities, m)
	}
	return municipalities, rows.Err()
}

// Resolve checks a ballot request against the catalog and returns the rows it
// names. Hierarchy mismatches (a district outside the requested province, a
// ward number beyond the municipality's range) surface as validation errors.
func (r *Repo) Resolve(ctx context.Context, req domain.BallotRequest) (*domain.ResolvedLocation, error) {
	province, err := r.GetProvince(ctx, req.ProvinceID)
	if err != nil {
		return nil, err
	}

	loc := &domain.ResolvedLocation{Province: *province}

	if req.DistrictID != nil {
		district, err := r.GetDistrict(ctx, *req.DistrictID)
		if err != nil {
			return nil, err
		}
		if district.ProvinceID != province.ID {
			return nil, domain.NewValidationErrors([]domain.FieldError{
				{Field: "district", Message: "not in requested province"},
			})
		}
		loc.District = district
	}

	if req.MunicipalityID != nil {
		municipality, err := r.GetMunicipality(ctx, *req.MunicipalityID)
		if err != nil {
			return nil, err
		}
		if loc.District == nil || municipality.DistrictID != loc.District.ID {
			return nil, domain.NewValidationErrors([]domain.FieldError{
				{Field: "municipality", Message: "not in requested district"},
			})
		}
		loc.Municipality = municipality

		if req.WardNumber != nil {
			if *req.WardNumber > municipality.TotalWards {
				return nil, domain.NewValidationErrors([]domain.FieldError{
					{Field: "ward", Message: fmt.Sprintf("municipality has %d wards", municipality.TotalWards)},
				})
			}
			loc.WardNumber = req.WardNumber
		}
	}

	return loc, nil
}
