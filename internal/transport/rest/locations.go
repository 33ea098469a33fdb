package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/manesha63/electNepal-sub000/internal/domain"
)

// locationCatalog defines the minimal interface needed by LocationHandler.
type locationCatalog interface {
	ListProvinces(ctx context.Context) ([]domain.Province, error)
	ListDistricts(ctx context.Context, provinceID int) ([]domain.District, error)
	ListMunicipalities(ctx context.Context, districtID int) ([]domain.Municipality, error)
}

// LocationHandler serves the administrative catalog used by location pickers.
type LocationHandler struct {
	catalog locationCatalog
	log     *slog.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(catalog locationCatalog, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{catalog: catalog, log: logger.With("handler", "locations")}
}

// ListProvinces handles GET /api/v1/locations/provinces.
func (h *LocationHandler) ListProvinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.catalog.ListProvinces(r.Context())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	out := make([]provinceResponse, 0, len(provinces))
	for _, p := range provinces {
		out = append(out, provinceResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListDistricts handles GET /api/v1/locations/provinces/{id}/districts.
func (h *LocationHandler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	provinceID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid province id")
		return
	}

	districts, err := h.catalog.ListDistricts(r.Context(), provinceID)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	out := make([]districtResponse, 0, len(districts))
	for _, d := range districts {
		out = append(out, districtResponse(d))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListMunicipalities handles GET /api/v1/locations/districts/{id}/municipalities.
func (h *LocationHandler) ListMunicipalities(w http.ResponseWriter, r *http.Request) {
	districtID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid district id")
		return
	}

	municipalities, err := h.catalog.ListMunicipalities(r.Context(), districtID)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	out := make([]municipalityResponse, 0, len(municipalities))
	for _, m := range municipalities {
		out = append(out, municipalityResponse(m))
	}
	writeJSON(w, http.StatusOK, out)
}
