// Package csv provides a CSV-backed station catalog.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.ngs.io/geocorr/internal/adapter/store"
	"go.ngs.io/geocorr/internal/domain"
)

// Column names recognized in the station file header.
const (
	colID          = "station_id"
	colName        = "name"
	colLatitude    = "latitude"
	colLongitude   = "longitude"
	colHeight      = "height_m"
	colTemperature = "temperature_k"
)

var requiredColumns = []string{colID, colLatitude, colLongitude, colHeight}

// StationStore is an in-memory station catalog loaded from CSV.
type StationStore struct {
	stations map[string]domain.Station
}

// LoadStationFile reads a station catalog from a CSV file.
func LoadStationFile(path string) (*StationStore, error) {
	//nolint:gosec // G304: path comes from server configuration.
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open station file: %w", err)
	}
	defer func() { _ = file.Close() }()

	s, err := LoadStations(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return s, nil
}

// LoadStations reads a station catalog from r. The header must name at least
// station_id, latitude, longitude and height_m; name and temperature_k are
// optional, and an empty temperature cell means unknown.
func LoadStations(r io.Reader) (*StationStore, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	// Read header.
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("invalid CSV header: missing column %s (got %v)", name, header)
		}
	}

	s := &StationStore{stations: make(map[string]domain.Station)}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		st, err := parseStation(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		key := strings.ToLower(st.ID)
		if _, dup := s.stations[key]; dup {
			return nil, fmt.Errorf("line %d: duplicate station %s", line, st.ID)
		}
		s.stations[key] = st
	}

	if len(s.stations) == 0 {
		return nil, fmt.Errorf("no stations found in CSV")
	}

	return s, nil
}

func parseStation(record []string, cols map[string]int) (domain.Station, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	number := func(name string) (float64, error) {
		v, err := strconv.ParseFloat(field(name), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", name, err)
		}
		return v, nil
	}

	st := domain.Station{
		ID:   field(colID),
		Name: field(colName),
	}
	if st.ID == "" {
		return st, fmt.Errorf("empty %s", colID)
	}

	var err error
	if st.LatitudeDeg, err = number(colLatitude); err != nil {
		return st, err
	}
	if st.LongitudeDeg, err = number(colLongitude); err != nil {
		return st, err
	}
	if st.HeightM, err = number(colHeight); err != nil {
		return st, err
	}

	if field(colTemperature) != "" {
		temp, err := number(colTemperature)
		if err != nil {
			return st, err
		}
		st.TemperatureK = &temp
	}

	return st, nil
}

// Station returns the station with the given ID.
func (s *StationStore) Station(id string) (domain.Station, error) {
	st, ok := s.stations[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return domain.Station{}, fmt.Errorf("%w: %s", store.ErrStationNotFound, id)
	}
	return st, nil
}

// Stations returns all stations ordered by ID.
func (s *StationStore) Stations() []domain.Station {
	out := make([]domain.Station, 0, len(s.stations))
	for _, st := range s.stations {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
