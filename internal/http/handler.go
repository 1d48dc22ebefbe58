package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go.ngs.io/geocorr/internal/adapter/store"
	"go.ngs.io/geocorr/internal/usecase"
)

// Handler handles HTTP requests for the correction models.
type Handler struct {
	mappingUC *usecase.MappingUseCase
	zonalUC   *usecase.ZonalTideUseCase
	stations  store.StationCatalog
}

// NewHandler creates a new HTTP handler.
func NewHandler(mappingUC *usecase.MappingUseCase, zonalUC *usecase.ZonalTideUseCase, stations store.StationCatalog) *Handler {
	return &Handler{
		mappingUC: mappingUC,
		zonalUC:   zonalUC,
		stations:  stations,
	}
}

// queryFloat parses an optional float query parameter.
func queryFloat(c *gin.Context, name string) (*float64, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &v, nil
}

// GetMapping handles GET /v1/troposphere/mapping.
func (h *Handler) GetMapping(c *gin.Context) {
	// Parse query parameters.
	var req usecase.MappingRequest
	for name, dst := range map[string]**float64{
		"lat":    &req.Lat,
		"lon":    &req.Lon,
		"height": &req.HeightM,
		"temp":   &req.TemperatureK,
		"elev":   &req.ElevationDeg,
	} {
		v, err := queryFloat(c, name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		*dst = v
	}

	if stationID := c.Query("station_id"); stationID != "" {
		req.StationID = &stationID
	}

	// Execute use case.
	response, err := h.mappingUC.Execute(req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetZonalTides handles GET /v1/earth-rotation/zonal-tides.
func (h *Handler) GetZonalTides(c *gin.Context) {
	// Parse query parameters.
	var req usecase.ZonalTideRequest
	for name, dst := range map[string]**float64{
		"t":   &req.T,
		"jd":  &req.JD,
		"mjd": &req.MJD,
	} {
		v, err := queryFloat(c, name)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		*dst = v
	}

	if timeStr := c.Query("time"); timeStr != "" {
		ts, err := time.Parse(time.RFC3339, timeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid time (expected RFC3339): %v", err)})
			return
		}
		ts = ts.UTC()
		req.Time = &ts
	}

	// Execute use case.
	response, err := h.zonalUC.Execute(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetZonalTideTerms handles GET /v1/earth-rotation/zonal-tides/terms.
func (h *Handler) GetZonalTideTerms(c *gin.Context) {
	terms := h.zonalUC.Terms()

	c.JSON(http.StatusOK, gin.H{
		"terms": terms,
		"count": len(terms),
		"units": gin.H{
			"ut":    "1e-4 s",
			"lod":   "1e-5 s",
			"omega": "1e-14 rad/s",
		},
	})
}

// GetStations handles GET /v1/stations.
func (h *Handler) GetStations(c *gin.Context) {
	stations := h.stations.Stations()

	c.JSON(http.StatusOK, gin.H{
		"stations": stations,
		"count":    len(stations),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrStationNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrTemperatureUnavailable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
