package interp

import (
	"errors"
	"math"
	"testing"
)

// TestCell_Interpolate_Center tests interpolation at the center of a cell.
func TestCell_Interpolate_Center(t *testing.T) {
	cell := Cell{
		X0: 0.0, X1: 2.0,
		Y0: 0.0, Y1: 2.0,
		V00: 1.0, V10: 3.0,
		V01: 5.0, V11: 7.0,
	}

	// At the center every corner has weight 0.25.
	result, err := cell.Interpolate(1.0, 1.0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(result-4.0) > 1e-12 {
		t.Errorf("Center point: expected 4.0, got %.10f", result)
	}
}

// TestCell_Interpolate_Corners tests that corners return exact values.
func TestCell_Interpolate_Corners(t *testing.T) {
	cell := Cell{
		X0: 0.0, X1: 10.0,
		Y0: 0.0, Y1: 10.0,
		V00: 1.0, V10: 2.0,
		V01: 3.0, V11: 4.0,
	}

	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{"bottom-left", 0.0, 0.0, 1.0},
		{"bottom-right", 10.0, 0.0, 2.0},
		{"top-left", 0.0, 10.0, 3.0},
		{"top-right", 10.0, 10.0, 4.0},
	}

	for _, tt := range tests {
		result, err := cell.Interpolate(tt.x, tt.y)
		if err != nil {
			t.Fatalf("Unexpected error for %s: %v", tt.name, err)
		}
		if result != tt.expected {
			t.Errorf("%s corner: expected %.10f, got %.10f", tt.name, tt.expected, result)
		}
	}
}

// TestCell_Interpolate_Missing tests that NaN corners are reported.
func TestCell_Interpolate_Missing(t *testing.T) {
	cell := Cell{X0: 0, X1: 1, Y0: 0, Y1: 1, V00: 1, V10: math.NaN(), V01: 1, V11: 1}

	if _, err := cell.Interpolate(0.5, 0.5); !errors.Is(err, ErrMissingValue) {
		t.Errorf("expected ErrMissingValue, got %v", err)
	}
}

// TestCell_Interpolate_Degenerate tests rejection of zero-width cells.
func TestCell_Interpolate_Degenerate(t *testing.T) {
	cell := Cell{X0: 1, X1: 1, Y0: 0, Y1: 1}

	if _, err := cell.Interpolate(1, 0.5); err == nil {
		t.Error("expected error for degenerate cell")
	}
}

func sampleGrid() *Grid {
	// Values increase by 1 per degree of longitude and 10 per degree of latitude.
	return &Grid{
		Lon: []float64{0, 90, 180, 270},
		Lat: []float64{-10, 0, 10},
		Values: [][]float64{
			{-100, -10, 80, 170},
			{0, 90, 180, 270},
			{100, 190, 280, 370},
		},
		Periodic: true,
	}
}

// TestGrid_Validate tests grid shape checks.
func TestGrid_Validate(t *testing.T) {
	if err := sampleGrid().Validate(); err != nil {
		t.Fatalf("expected valid grid, got %v", err)
	}

	bad := sampleGrid()
	bad.Lat = []float64{-10, 10, 0}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unsorted latitudes")
	}

	short := sampleGrid()
	short.Values = short.Values[:2]
	if err := short.Validate(); err == nil {
		t.Error("expected error for row count mismatch")
	}
}

// TestGrid_At tests interpolation inside the grid and across the dateline.
func TestGrid_At(t *testing.T) {
	g := sampleGrid()

	tests := []struct {
		name     string
		lon, lat float64
		expected float64
	}{
		{"node", 90, 0, 90},
		{"interior", 45, 5, 95},
		{"negative longitude", -90, 0, 270},
		{"wrap cell midpoint", 315, 0, 135},
		{"wrap cell at 360", 360, 0, 0},
	}

	for _, tt := range tests {
		got, err := g.At(tt.lon, tt.lat)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("%s: expected %.6f, got %.6f", tt.name, tt.expected, got)
		}
	}
}

// TestGrid_At_Outside tests points beyond the latitude range or a
// non-periodic longitude range.
func TestGrid_At_Outside(t *testing.T) {
	g := sampleGrid()
	if _, err := g.At(10, 20); !errors.Is(err, ErrOutsideGrid) {
		t.Errorf("expected ErrOutsideGrid for latitude, got %v", err)
	}

	g.Periodic = false
	if _, err := g.At(300, 0); !errors.Is(err, ErrOutsideGrid) {
		t.Errorf("expected ErrOutsideGrid for longitude, got %v", err)
	}
}

// TestGrid_At_SignedLongitudes tests grids stored on a -180..180 axis.
func TestGrid_At_SignedLongitudes(t *testing.T) {
	g := &Grid{
		Lon:    []float64{-180, 0},
		Lat:    []float64{0, 1},
		Values: [][]float64{{0, 180}, {0, 180}},
	}

	got, err := g.At(270, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 270° east is -90°.
	if math.Abs(got-90) > 1e-9 {
		t.Errorf("expected 90, got %.6f", got)
	}
}

// TestGrid_Flip tests reordering of north-to-south data.
func TestGrid_Flip(t *testing.T) {
	g := &Grid{
		Lon:    []float64{0, 1},
		Lat:    []float64{10, 0},
		Values: [][]float64{{1, 1}, {2, 2}},
	}

	f := g.Flip()
	if err := f.Validate(); err != nil {
		t.Fatalf("flipped grid invalid: %v", err)
	}
	if f.Lat[0] != 0 || f.Values[0][0] != 2 {
		t.Errorf("unexpected flip result: lat=%v values=%v", f.Lat, f.Values)
	}
}
