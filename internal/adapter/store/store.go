// Package store defines the data sources used by the use cases.
package store

import (
	"errors"

	"go.ngs.io/geocorr/internal/domain"
)

// ErrStationNotFound is returned when a station ID is not in the catalog.
var ErrStationNotFound = errors.New("station not found")

// StationCatalog looks up station coordinates by ID.
type StationCatalog interface {
	// Station returns the station with the given ID (case-insensitive).
	Station(id string) (domain.Station, error)

	// Stations returns all stations ordered by ID.
	Stations() []domain.Station
}

// TemperatureSource provides a surface temperature estimate for a location.
type TemperatureSource interface {
	// TemperatureAt returns the surface temperature in kelvin at (lat, lon).
	TemperatureAt(lat, lon float64) (float64, error)
}
