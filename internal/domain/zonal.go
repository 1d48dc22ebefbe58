package domain

import (
	"math"

	"github.com/soniakeys/unit"
)

// zonalTermCount is the number of rows in the zonal tide table.
const zonalTermCount = 62

// Scale factors from the table units to SI.
const (
	dutScale    = 1e-4  // 1e-4 s to s.
	dlodScale   = 1e-5  // 1e-5 s to s.
	domegaScale = 1e-14 // 1e-14 rad/s to rad/s.
)

// daysPerJulianCentury is the length of a Julian century in days.
const daysPerJulianCentury = 36525.0

// ZonalTideTerm is one row of the zonal tide table.
type ZonalTideTerm struct {
	Multipliers [5]int // Integer multipliers of l, l', F, D and Ω.

	UTSin    float64 // UT1 sine coefficient (1e-4 s).
	UTCos    float64 // UT1 cosine coefficient (1e-4 s).
	LODCos   float64 // LOD cosine coefficient (1e-5 s).
	LODSin   float64 // LOD sine coefficient (1e-5 s).
	OmegaCos float64 // ω cosine coefficient (1e-14 rad/s).
	OmegaSin float64 // ω sine coefficient (1e-14 rad/s).
}

// Argument returns the term argument for the given fundamental arguments,
// reduced to [0, 2π).
func (z ZonalTideTerm) Argument(fa FundamentalArguments) float64 {
	arg := float64(z.Multipliers[0])*fa.L +
		float64(z.Multipliers[1])*fa.LPrime +
		float64(z.Multipliers[2])*fa.F +
		float64(z.Multipliers[3])*fa.D +
		float64(z.Multipliers[4])*fa.Omega
	return unit.PMod(arg, 2*math.Pi)
}

// PeriodDays returns the period of the term in days, derived from the linear
// rates of the fundamental arguments. Negative periods indicate a retrograde
// argument.
func (z ZonalTideTerm) PeriodDays() float64 {
	rate := 0.0
	for i, n := range z.Multipliers {
		rate += float64(n) * argumentRatesArcsecPerCentury[i]
	}
	return daysPerJulianCentury * arcsecPerTurn / rate
}

// ZonalTideTerms returns a copy of the zonal tide table in summation order.
func ZonalTideTerms() []ZonalTideTerm {
	terms := make([]ZonalTideTerm, len(zonalTideTerms))
	copy(terms, zonalTideTerms[:])
	return terms
}

// TideCorrections holds the zonal tidal variations in Earth rotation.
type TideCorrections struct {
	DUT    float64 `json:"dut_s"`        // UT1 correction in seconds.
	DLOD   float64 `json:"dlod_s"`       // Length-of-day correction in seconds per day.
	DOmega float64 `json:"domega_rad_s"` // Rotation speed correction in radians per second.
}

// ZonalTideModel evaluates the effect of zonal Earth tides on the rotation of
// the Earth (IERS Conventions 2010, RG_ZONT2).
type ZonalTideModel struct {
	provider ArgumentProvider
}

// NewZonalTideModel creates a model using the given argument provider.
// A nil provider selects IERS2010Arguments.
func NewZonalTideModel(provider ArgumentProvider) *ZonalTideModel {
	if provider == nil {
		provider = IERS2010Arguments{}
	}
	return &ZonalTideModel{provider: provider}
}

// Arguments returns the fundamental arguments the model uses at t.
func (m *ZonalTideModel) Arguments(t float64) FundamentalArguments {
	return m.provider.Arguments(t)
}

// Compute evaluates the corrections at t, in Julian centuries since J2000.0.
func (m *ZonalTideModel) Compute(t float64) TideCorrections {
	corr, _ := m.Evaluate(t)
	return corr
}

// Evaluate returns the corrections at t together with the fundamental
// arguments they were computed from. The provider is called once.
func (m *ZonalTideModel) Evaluate(t float64) (TideCorrections, FundamentalArguments) {
	fa := m.provider.Arguments(t)
	return SumZonalTerms(fa, zonalTideTerms[:]), fa
}

// SumZonalTerms accumulates the given terms for a set of fundamental
// arguments, in slice order, and scales the sums to SI units.
func SumZonalTerms(fa FundamentalArguments, terms []ZonalTideTerm) TideCorrections {
	var dut, dlod, domega float64
	for _, term := range terms {
		arg := term.Argument(fa)
		sinArg, cosArg := math.Sin(arg), math.Cos(arg)

		dut += term.UTSin*sinArg + term.UTCos*cosArg
		dlod += term.LODCos*cosArg + term.LODSin*sinArg
		domega += term.OmegaCos*cosArg + term.OmegaSin*sinArg
	}

	return TideCorrections{
		DUT:    dut * dutScale,
		DLOD:   dlod * dlodScale,
		DOmega: domega * domegaScale,
	}
}

// defaultZonalModel uses IERS2010Arguments.
var defaultZonalModel = NewZonalTideModel(nil)

// ZonalTides evaluates the zonal tide corrections at t with the IERS 2010
// fundamental arguments.
func ZonalTides(t float64) TideCorrections {
	return defaultZonalModel.Compute(t)
}
