package domain

import "math"

const (
	// arcsecPerTurn is the number of arcseconds in a full circle.
	arcsecPerTurn = 1296000.0
	// arcsecToRad converts arcseconds to radians.
	arcsecToRad = 4.848136811095359935899141e-6
)

// FundamentalArguments holds the five Delaunay arguments of lunisolar
// nutation, in radians.
type FundamentalArguments struct {
	L      float64 `json:"l"`       // Mean anomaly of the Moon.
	LPrime float64 `json:"l_prime"` // Mean anomaly of the Sun.
	F      float64 `json:"f"`       // Mean argument of latitude of the Moon (L - Ω).
	D      float64 `json:"d"`       // Mean elongation of the Moon from the Sun.
	Omega  float64 `json:"omega"`   // Mean longitude of the Moon's ascending node.
}

// ArgumentProvider supplies fundamental arguments for an epoch given in
// Julian centuries since J2000.0 (TT).
type ArgumentProvider interface {
	Arguments(t float64) FundamentalArguments
}

// ArgumentFunc adapts an ordinary function to ArgumentProvider.
type ArgumentFunc func(t float64) FundamentalArguments

// Arguments calls f(t).
func (f ArgumentFunc) Arguments(t float64) FundamentalArguments {
	return f(t)
}

// IERS2010Arguments implements ArgumentProvider with the polynomial
// expressions of the IERS Conventions (2010), chapter 5 (Simon et al. 1994).
type IERS2010Arguments struct{}

// Arguments evaluates the five fundamental arguments at t.
func (IERS2010Arguments) Arguments(t float64) FundamentalArguments {
	return FundamentalArguments{
		L: reduceArcsec(485868.249036 +
			t*(1717915923.2178+t*(31.8792+t*(0.051635+t*(-0.00024470))))),
		LPrime: reduceArcsec(1287104.79305 +
			t*(129596581.0481+t*(-0.5532+t*(0.000136+t*(-0.00001149))))),
		F: reduceArcsec(335779.526232 +
			t*(1739527262.8478+t*(-12.7512+t*(-0.001037+t*(0.00000417))))),
		D: reduceArcsec(1072260.70369 +
			t*(1602961601.2090+t*(-6.3706+t*(0.006593+t*(-0.00003169))))),
		Omega: reduceArcsec(450160.398036 +
			t*(-6962890.5431+t*(7.4722+t*(0.007702+t*(-0.00005939))))),
	}
}

// reduceArcsec takes an angle in arcseconds modulo one turn and converts it
// to radians. The sign of the input is preserved.
func reduceArcsec(as float64) float64 {
	return math.Mod(as, arcsecPerTurn) * arcsecToRad
}

// argumentRatesArcsecPerCentury are the linear rates of l, l', F, D and Ω.
var argumentRatesArcsecPerCentury = [5]float64{
	1717915923.2178,
	129596581.0481,
	1739527262.8478,
	1602961601.2090,
	-6962890.5431,
}
