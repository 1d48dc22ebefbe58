package domain

import "math"

// Marini continued-fraction coefficients of the FCUL_A mapping function
// (Mendes et al. 2002). Each coefficient is linear in surface temperature (°C),
// cosine of latitude and station height (m).
const (
	a10 = 0.121008e-02
	a11 = 0.17295e-05
	a12 = 0.3191e-04
	a13 = -0.18478e-07

	a20 = 0.304965e-02
	a21 = 0.2346e-05
	a22 = -0.1035e-03
	a23 = -0.1856e-07

	a30 = 0.68777e-01
	a31 = 0.1972e-04
	a32 = -0.3458e-02
	a33 = 0.1060e-06
)

// celsiusOffset converts kelvin to degrees Celsius.
const celsiusOffset = 273.15

// MappingInputs holds the station and observation parameters of the FCUL_A
// mapping function.
type MappingInputs struct {
	LatitudeDeg  float64 // Geodetic latitude in degrees.
	HeightM      float64 // Station height in meters.
	TemperatureK float64 // Surface temperature in kelvin.
	ElevationDeg float64 // Elevation angle of the observation in degrees.
}

// MariniCoefficients holds the three continued-fraction coefficients for a
// station.
type MariniCoefficients struct {
	A1 float64 `json:"a1"`
	A2 float64 `json:"a2"`
	A3 float64 `json:"a3"`
}

// NewMariniCoefficients evaluates the coefficients for a station.
// Elevation does not enter the coefficients.
func NewMariniCoefficients(latDeg, heightM, tempK float64) MariniCoefficients {
	tC := tempK - celsiusOffset
	cosPhi := math.Cos(Deg2Rad(latDeg))

	return MariniCoefficients{
		A1: a10 + a11*tC + a12*cosPhi + a13*heightM,
		A2: a20 + a21*tC + a22*cosPhi + a23*heightM,
		A3: a30 + a31*tC + a32*cosPhi + a33*heightM,
	}
}

// ZenithValue returns the continued fraction evaluated at sin(e) = 1.
// It is the numerator that normalizes the mapping function to 1 at zenith.
func (m MariniCoefficients) ZenithValue() float64 {
	return 1.0 + m.A1/(1.0+m.A2/(1.0+m.A3))
}

// Fraction evaluates the continued fraction for a given sine of elevation.
func (m MariniCoefficients) Fraction(sine float64) float64 {
	return sine + m.A1/(sine+m.A2/(sine+m.A3))
}

// Map returns the mapping factor for the given elevation in degrees.
func (m MariniCoefficients) Map(elevDeg float64) float64 {
	sine := math.Sin(Deg2Rad(elevDeg))
	return m.ZenithValue() / m.Fraction(sine)
}

// MappingFunction computes the FCUL_A tropospheric mapping factor, the ratio
// of slant to zenith delay at the given elevation.
//
// Inputs are not validated. Elevations near 0° are outside the model's
// validity and may produce very large, infinite or NaN results.
func MappingFunction(latDeg, heightM, tempK, elevDeg float64) float64 {
	return NewMariniCoefficients(latDeg, heightM, tempK).Map(elevDeg)
}

// Compute returns the mapping factor for the inputs.
func (in MappingInputs) Compute() float64 {
	return MappingFunction(in.LatitudeDeg, in.HeightM, in.TemperatureK, in.ElevationDeg)
}
