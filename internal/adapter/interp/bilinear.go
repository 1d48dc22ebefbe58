// Package interp provides bilinear interpolation on regular latitude/longitude grids.
package interp

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrOutsideGrid is returned when a point lies outside the grid extent.
var ErrOutsideGrid = errors.New("point outside grid")

// ErrMissingValue is returned when a cell corner holds a missing value.
var ErrMissingValue = errors.New("missing value in grid cell")

// Cell is a rectangular grid cell with values at its four corners.
type Cell struct {
	X0, X1 float64 // Longitude bounds.
	Y0, Y1 float64 // Latitude bounds.

	// V00 is at (X0, Y0), V10 at (X1, Y0), V01 at (X0, Y1), V11 at (X1, Y1).
	V00, V10, V01, V11 float64
}

// Interpolate evaluates the bilinear surface of the cell at (x, y):
//
//	f(x,y) = (1-t)(1-u)V00 + t(1-u)V10 + (1-t)u V01 + tu V11
//
// with t = (x-X0)/(X1-X0) and u = (y-Y0)/(Y1-Y0).
func (c Cell) Interpolate(x, y float64) (float64, error) {
	if c.X1 <= c.X0 || c.Y1 <= c.Y0 {
		return 0, fmt.Errorf("degenerate cell [%g, %g] x [%g, %g]", c.X0, c.X1, c.Y0, c.Y1)
	}
	for _, v := range [4]float64{c.V00, c.V10, c.V01, c.V11} {
		if math.IsNaN(v) {
			return 0, ErrMissingValue
		}
	}

	t := clamp01((x - c.X0) / (c.X1 - c.X0))
	u := clamp01((y - c.Y0) / (c.Y1 - c.Y0))

	return (1-t)*(1-u)*c.V00 +
		t*(1-u)*c.V10 +
		(1-t)*u*c.V01 +
		t*u*c.V11, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Grid is a regular grid of values indexed as Values[lat][lon].
type Grid struct {
	Lon    []float64   // Strictly increasing longitudes in degrees.
	Lat    []float64   // Strictly increasing latitudes in degrees.
	Values [][]float64 // Values[i][j] is at (Lon[j], Lat[i]); NaN marks missing data.

	// Periodic marks a grid whose longitudes cover the full circle, so that
	// points between the last and first column wrap around.
	Periodic bool
}

// Validate checks dimensions and coordinate ordering.
func (g *Grid) Validate() error {
	if len(g.Lon) < 2 || len(g.Lat) < 2 {
		return fmt.Errorf("grid must have at least 2x2 points, got %dx%d", len(g.Lat), len(g.Lon))
	}
	if len(g.Values) != len(g.Lat) {
		return fmt.Errorf("number of value rows (%d) must match latitudes (%d)", len(g.Values), len(g.Lat))
	}
	for i, row := range g.Values {
		if len(row) != len(g.Lon) {
			return fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(g.Lon))
		}
	}
	if !strictlyIncreasing(g.Lon) {
		return fmt.Errorf("longitudes must be strictly increasing")
	}
	if !strictlyIncreasing(g.Lat) {
		return fmt.Errorf("latitudes must be strictly increasing")
	}
	return nil
}

func strictlyIncreasing(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] <= v[i-1] {
			return false
		}
	}
	return true
}

// At interpolates the grid at (lon, lat) in degrees. Longitudes are first
// brought into the grid's own convention (0..360 or -180..180).
func (g *Grid) At(lon, lat float64) (float64, error) {
	lon = g.normalizeLon(lon)

	i, ok := bracket(g.Lat, lat)
	if !ok {
		return 0, fmt.Errorf("%w: latitude %.4f not in [%.4f, %.4f]", ErrOutsideGrid, lat, g.Lat[0], g.Lat[len(g.Lat)-1])
	}

	last := len(g.Lon) - 1
	if j, ok := bracket(g.Lon, lon); ok {
		return Cell{
			X0: g.Lon[j], X1: g.Lon[j+1],
			Y0: g.Lat[i], Y1: g.Lat[i+1],
			V00: g.Values[i][j], V10: g.Values[i][j+1],
			V01: g.Values[i+1][j], V11: g.Values[i+1][j+1],
		}.Interpolate(lon, lat)
	}

	if !g.Periodic {
		return 0, fmt.Errorf("%w: longitude %.4f not in [%.4f, %.4f]", ErrOutsideGrid, lon, g.Lon[0], g.Lon[last])
	}

	// Wrap cell between the last column and the first one shifted by 360°.
	x := lon
	if x < g.Lon[0] {
		x += 360
	}
	return Cell{
		X0: g.Lon[last], X1: g.Lon[0] + 360,
		Y0: g.Lat[i], Y1: g.Lat[i+1],
		V00: g.Values[i][last], V10: g.Values[i][0],
		V01: g.Values[i+1][last], V11: g.Values[i+1][0],
	}.Interpolate(x, lat)
}

// normalizeLon maps lon into the convention used by the grid axis.
func (g *Grid) normalizeLon(lon float64) float64 {
	if g.Lon[0] >= 0 {
		lon = math.Mod(lon, 360)
		if lon < 0 {
			lon += 360
		}
		return lon
	}
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// bracket returns i such that axis[i] <= v <= axis[i+1].
func bracket(axis []float64, v float64) (int, bool) {
	n := len(axis)
	if math.IsNaN(v) || v < axis[0] || v > axis[n-1] {
		return 0, false
	}
	i := sort.SearchFloat64s(axis, v)
	if i == 0 {
		return 0, true
	}
	return i - 1, true
}

// Flip returns a copy of the grid with latitudes in increasing order, for
// data stored north to south.
func (g *Grid) Flip() *Grid {
	n := len(g.Lat)
	out := &Grid{
		Lon:      g.Lon,
		Lat:      make([]float64, n),
		Values:   make([][]float64, n),
		Periodic: g.Periodic,
	}
	for i := range g.Lat {
		out.Lat[i] = g.Lat[n-1-i]
		out.Values[i] = g.Values[n-1-i]
	}
	return out
}
