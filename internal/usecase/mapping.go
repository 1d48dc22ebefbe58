package usecase

import (
	"errors"
	"fmt"
	"math"

	"go.ngs.io/geocorr/internal/adapter/store"
	"go.ngs.io/geocorr/internal/domain"
)

// Temperature sources reported in mapping responses.
const (
	TemperatureFromRequest     = "request"
	TemperatureFromStation     = "station"
	TemperatureFromClimatology = "climatology"
)

// lowElevationDeg marks elevations below which the mapping function is
// outside its validated range.
const lowElevationDeg = 3.0

// ErrTemperatureUnavailable is returned when no temperature can be determined.
var ErrTemperatureUnavailable = errors.New("temperature is required (no station or climatology value available)")

// MappingRequest encapsulates a tropospheric mapping request.
type MappingRequest struct {
	// Station ID (mutually exclusive with Lat/Height).
	StationID *string

	// Location parameters.
	Lat     *float64
	Lon     *float64 // Only used for the climatology lookup.
	HeightM *float64

	TemperatureK *float64
	ElevationDeg *float64
}

// MappingResponse contains the mapping factor and the inputs used.
type MappingResponse struct {
	StationID         string                    `json:"station_id,omitempty"`
	LatitudeDeg       float64                   `json:"latitude_deg"`
	LongitudeDeg      *float64                  `json:"longitude_deg,omitempty"`
	HeightM           float64                   `json:"height_m"`
	TemperatureK      float64                   `json:"temperature_k"`
	TemperatureSource string                    `json:"temperature_source"`
	ElevationDeg      float64                   `json:"elevation_deg"`
	Coefficients      domain.MariniCoefficients `json:"coefficients"`
	ZenithValue       float64                   `json:"zenith_value"`
	MappingFactor     float64                   `json:"mapping_factor"`
	LowElevation      bool                      `json:"low_elevation"`
	Model             string                    `json:"model"`
}

// MappingUseCase computes FCUL_A mapping factors.
type MappingUseCase struct {
	stations    store.StationCatalog    // Optional.
	climatology store.TemperatureSource // Optional.
}

// NewMappingUseCase creates a new mapping use case. Either store may be nil.
func NewMappingUseCase(stations store.StationCatalog, climatology store.TemperatureSource) *MappingUseCase {
	return &MappingUseCase{
		stations:    stations,
		climatology: climatology,
	}
}

// Validate checks if the request is valid. Values are only checked for
// presence and finiteness; the model itself applies no range limits.
func (r *MappingRequest) Validate() error {
	hasStation := r.StationID != nil && *r.StationID != ""
	hasLocation := r.Lat != nil || r.HeightM != nil

	if !hasStation && !hasLocation {
		return fmt.Errorf("either station_id or lat/height must be provided")
	}
	if hasStation && hasLocation {
		return fmt.Errorf("station_id and lat/height are mutually exclusive")
	}
	if hasLocation && (r.Lat == nil || r.HeightM == nil) {
		return fmt.Errorf("lat and height must be provided together")
	}

	if r.ElevationDeg == nil {
		return fmt.Errorf("elevation is required")
	}

	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"lat", r.Lat},
		{"lon", r.Lon},
		{"height", r.HeightM},
		{"temperature", r.TemperatureK},
		{"elevation", r.ElevationDeg},
	} {
		if f.value != nil && (math.IsNaN(*f.value) || math.IsInf(*f.value, 0)) {
			return fmt.Errorf("%s must be a finite number", f.name)
		}
	}

	return nil
}

// Execute computes the mapping factor for the request.
func (uc *MappingUseCase) Execute(req MappingRequest) (*MappingResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	resp := &MappingResponse{
		ElevationDeg: *req.ElevationDeg,
		Model:        "FCUL_A",
	}

	var stationTemp *float64
	if req.StationID != nil {
		if uc.stations == nil {
			return nil, fmt.Errorf("%w: no station catalog configured", store.ErrStationNotFound)
		}
		st, err := uc.stations.Station(*req.StationID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up station %s: %w", *req.StationID, err)
		}
		resp.StationID = st.ID
		resp.LatitudeDeg = st.LatitudeDeg
		lon := st.LongitudeDeg
		resp.LongitudeDeg = &lon
		resp.HeightM = st.HeightM
		stationTemp = st.TemperatureK
	} else {
		resp.LatitudeDeg = *req.Lat
		resp.LongitudeDeg = req.Lon
		resp.HeightM = *req.HeightM
	}

	// Resolve temperature: request, then station, then climatology.
	switch {
	case req.TemperatureK != nil:
		resp.TemperatureK = *req.TemperatureK
		resp.TemperatureSource = TemperatureFromRequest
	case stationTemp != nil:
		resp.TemperatureK = *stationTemp
		resp.TemperatureSource = TemperatureFromStation
	case uc.climatology != nil && resp.LongitudeDeg != nil:
		temp, err := uc.climatology.TemperatureAt(resp.LatitudeDeg, *resp.LongitudeDeg)
		if err != nil {
			return nil, fmt.Errorf("failed to get climatology temperature: %w", err)
		}
		resp.TemperatureK = temp
		resp.TemperatureSource = TemperatureFromClimatology
	default:
		return nil, ErrTemperatureUnavailable
	}

	coeffs := domain.NewMariniCoefficients(resp.LatitudeDeg, resp.HeightM, resp.TemperatureK)
	resp.Coefficients = coeffs
	resp.ZenithValue = coeffs.ZenithValue()
	resp.MappingFactor = coeffs.Map(resp.ElevationDeg)
	resp.LowElevation = resp.ElevationDeg < lowElevationDeg

	return resp, nil
}
