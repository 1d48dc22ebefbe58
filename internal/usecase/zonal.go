package usecase

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"

	"go.ngs.io/geocorr/internal/domain"
)

// ZonalTideRequest selects an epoch. Exactly one field must be set.
type ZonalTideRequest struct {
	T    *float64   // Julian centuries since J2000.0 (TT).
	JD   *float64   // Julian Date.
	MJD  *float64   // Modified Julian Date.
	Time *time.Time // Calendar time.
}

// ArgumentValue is a fundamental argument in radians and degrees.
type ArgumentValue struct {
	Rad float64 `json:"rad"`
	Deg float64 `json:"deg"`
}

// ZonalTideResponse contains the zonal tide corrections at an epoch.
type ZonalTideResponse struct {
	T           float64                  `json:"t_centuries"`
	Time        string                   `json:"time"`
	DUT         float64                  `json:"dut_s"`
	DLOD        float64                  `json:"dlod_s"`
	DOmega      float64                  `json:"domega_rad_s"`
	Arguments   map[string]ArgumentValue `json:"arguments"`
	Model       string                   `json:"model"`
	Conventions string                   `json:"conventions"`
}

// ZonalTermInfo describes one row of the zonal tide table.
type ZonalTermInfo struct {
	Index       int     `json:"index"`
	Multipliers [5]int  `json:"multipliers"`
	PeriodDays  float64 `json:"period_days"`
	UTSin       float64 `json:"ut_sin"`
	UTCos       float64 `json:"ut_cos"`
	LODCos      float64 `json:"lod_cos"`
	LODSin      float64 `json:"lod_sin"`
	OmegaCos    float64 `json:"omega_cos"`
	OmegaSin    float64 `json:"omega_sin"`
}

// ZonalTideUseCase evaluates zonal tide corrections to Earth rotation.
type ZonalTideUseCase struct {
	model *domain.ZonalTideModel
}

// NewZonalTideUseCase creates a new use case. A nil model uses the IERS 2010
// fundamental arguments.
func NewZonalTideUseCase(model *domain.ZonalTideModel) *ZonalTideUseCase {
	if model == nil {
		model = domain.NewZonalTideModel(nil)
	}
	return &ZonalTideUseCase{model: model}
}

// Validate checks that exactly one finite epoch is given.
func (r *ZonalTideRequest) Validate() error {
	count := 0
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"t", r.T},
		{"jd", r.JD},
		{"mjd", r.MJD},
	} {
		if f.value == nil {
			continue
		}
		count++
		if math.IsNaN(*f.value) || math.IsInf(*f.value, 0) {
			return fmt.Errorf("%s must be a finite number", f.name)
		}
	}
	if r.Time != nil {
		count++
	}

	switch count {
	case 0:
		return fmt.Errorf("one of t, jd, mjd or time must be provided")
	case 1:
		return nil
	default:
		return fmt.Errorf("t, jd, mjd and time are mutually exclusive")
	}
}

// Centuries returns the epoch of the request in Julian centuries since J2000.0.
func (r *ZonalTideRequest) Centuries() float64 {
	switch {
	case r.T != nil:
		return *r.T
	case r.JD != nil:
		return domain.JulianCenturies(*r.JD)
	case r.MJD != nil:
		return domain.JulianCenturiesFromMJD(*r.MJD)
	default:
		return domain.JulianCenturiesFromTime(*r.Time)
	}
}

// Execute evaluates the zonal tide corrections.
func (uc *ZonalTideUseCase) Execute(req ZonalTideRequest) (*ZonalTideResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	t := req.Centuries()
	corr, fa := uc.model.Evaluate(t)

	return &ZonalTideResponse{
		T:      t,
		Time:   domain.TimeFromJulianCenturies(t).Round(time.Millisecond).Format(time.RFC3339Nano),
		DUT:    corr.DUT,
		DLOD:   corr.DLOD,
		DOmega: corr.DOmega,
		Arguments: map[string]ArgumentValue{
			"l":     argumentValue(fa.L),
			"l'":    argumentValue(fa.LPrime),
			"F":     argumentValue(fa.F),
			"D":     argumentValue(fa.D),
			"Omega": argumentValue(fa.Omega),
		},
		Model:       "RG_ZONT2",
		Conventions: "IERS 2010",
	}, nil
}

func argumentValue(rad float64) ArgumentValue {
	return ArgumentValue{Rad: rad, Deg: unit.Angle(rad).Deg()}
}

// Terms lists the zonal tide table in summation order.
func (uc *ZonalTideUseCase) Terms() []ZonalTermInfo {
	terms := domain.ZonalTideTerms()
	out := make([]ZonalTermInfo, len(terms))
	for i, term := range terms {
		out[i] = ZonalTermInfo{
			Index:       i + 1,
			Multipliers: term.Multipliers,
			PeriodDays:  term.PeriodDays(),
			UTSin:       term.UTSin,
			UTCos:       term.UTCos,
			LODCos:      term.LODCos,
			LODSin:      term.LODSin,
			OmegaCos:    term.OmegaCos,
			OmegaSin:    term.OmegaSin,
		}
	}
	return out
}
