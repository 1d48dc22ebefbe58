package domain

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// TestMappingFunction_Reference checks the published FCUL_A test case.
func TestMappingFunction_Reference(t *testing.T) {
	got := MappingFunction(30.67166667, 2075, 300.15, 15)
	want := 3.800243667312344087

	if !scalar.EqualWithinRel(got, want, 1e-14) {
		t.Errorf("MappingFunction: expected %.18f, got %.18f", want, got)
	}
}

// TestMappingInputs_Compute tests that the struct form matches the function form.
func TestMappingInputs_Compute(t *testing.T) {
	in := MappingInputs{
		LatitudeDeg:  30.67166667,
		HeightM:      2075,
		TemperatureK: 300.15,
		ElevationDeg: 15,
	}

	if got, want := in.Compute(), MappingFunction(30.67166667, 2075, 300.15, 15); got != want {
		t.Errorf("Compute: expected %v, got %v", want, got)
	}
}

// TestMappingFunction_Zenith tests that the factor is 1 at 90° elevation.
func TestMappingFunction_Zenith(t *testing.T) {
	tests := []struct {
		name   string
		lat    float64
		height float64
		temp   float64
	}{
		{"reference station", 30.67166667, 2075, 300.15},
		{"equator sea level", 0, 0, 300},
		{"polar cold", -89.5, 2800, 230},
		{"below sea level", 31.5, -400, 310},
	}

	for _, tt := range tests {
		m := NewMariniCoefficients(tt.lat, tt.height, tt.temp)
		got := MappingFunction(tt.lat, tt.height, tt.temp, 90)

		// At zenith the denominator equals the zenith numerator.
		if !scalar.EqualWithinULP(m.Fraction(math.Sin(Deg2Rad(90))), m.ZenithValue(), 4) {
			t.Errorf("%s: denominator %v differs from zenith value %v", tt.name, m.Fraction(1), m.ZenithValue())
		}
		if !scalar.EqualWithinULP(got, 1.0, 4) {
			t.Errorf("%s: expected 1 at zenith, got %.17f", tt.name, got)
		}
	}
}

// TestMappingFunction_Monotonic tests that the factor grows as elevation decreases.
func TestMappingFunction_Monotonic(t *testing.T) {
	elevations := []float64{90, 60, 30, 15, 5, 1, 0.1, 0.01}

	prev := 0.0
	for _, e := range elevations {
		got := MappingFunction(30.67166667, 2075, 300.15, e)
		if got <= prev {
			t.Errorf("elevation %.2f°: expected factor > %.6f, got %.6f", e, prev, got)
		}
		prev = got
	}
}

// TestMappingFunction_LowElevation tests the degenerate horizon behaviour.
func TestMappingFunction_LowElevation(t *testing.T) {
	// Near the horizon the value is large but finite.
	got := MappingFunction(45, 100, 288.15, 0.01)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("expected finite value at 0.01°, got %v", got)
	}
	if got < 30 {
		t.Errorf("expected a large factor at 0.01°, got %.6f", got)
	}

	// At exactly 0° the fraction reduces to A1·A3/A2, which is nonzero for
	// this station profile, so the result is finite here.
	h := MappingFunction(45, 100, 288.15, 0)
	c := NewMariniCoefficients(45, 100, 288.15)
	want := c.ZenithValue() / (c.A1 * c.A3 / c.A2)
	if math.IsNaN(h) || math.IsInf(h, 0) {
		t.Fatalf("expected a finite result at 0° for this profile, got %v", h)
	}
	if !scalar.EqualWithinRel(h, want, 1e-12) {
		t.Errorf("at 0°: expected %.15f, got %.15f", want, h)
	}
}

// TestNewMariniCoefficients tests the coefficient evaluation at a simple point.
func TestNewMariniCoefficients(t *testing.T) {
	// At 0 °C, equator (cos φ = 1) and sea level only the constant and
	// latitude terms remain.
	m := NewMariniCoefficients(0, 0, 273.15)

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"A1", m.A1, a10 + a12},
		{"A2", m.A2, a20 + a22},
		{"A3", m.A3, a30 + a32},
	}

	for _, tt := range tests {
		if math.Abs(tt.got-tt.expected) > 1e-18 {
			t.Errorf("%s: expected %.12e, got %.12e", tt.name, tt.expected, tt.got)
		}
	}
}

// TestMappingFunction_TemperatureSensitivity tests that warmer air lowers the
// factor at low elevation.
func TestMappingFunction_TemperatureSensitivity(t *testing.T) {
	cold := MappingFunction(40, 500, 250, 5)
	warm := MappingFunction(40, 500, 310, 5)

	if warm >= cold {
		t.Errorf("expected warm factor %.9f < cold factor %.9f", warm, cold)
	}
}
