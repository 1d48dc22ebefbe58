package domain

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
)

// mjdOffset is the difference between Julian Date and Modified Julian Date.
const mjdOffset = 2400000.5

// JulianCenturies returns Julian centuries since J2000.0 for a Julian Date.
func JulianCenturies(jd float64) float64 {
	return base.J2000Century(jd)
}

// JulianCenturiesFromMJD returns Julian centuries since J2000.0 for a
// Modified Julian Date.
func JulianCenturiesFromMJD(mjd float64) float64 {
	return base.J2000Century(mjd + mjdOffset)
}

// JulianCenturiesFromTime returns Julian centuries since J2000.0 for t.
// The time scale of t is used as is; the TT-UTC offset (about a minute) is
// well below the resolution of the zonal tide model.
func JulianCenturiesFromTime(t time.Time) float64 {
	return base.J2000Century(julian.TimeToJD(t.UTC()))
}

// TimeFromJulianCenturies converts Julian centuries since J2000.0 back to a
// UTC time.
func TimeFromJulianCenturies(t float64) time.Time {
	return julian.JDToTime(base.J2000 + t*base.JulianCentury).UTC()
}
