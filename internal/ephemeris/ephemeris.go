// Package ephemeris computes geocentric ecliptic longitudes of the Sun
// and Moon for arbitrary instants.
//
// Solar positions come from meeus/solar's apparent-longitude series,
// which includes nutation and aberration; lunar positions come from the
// abridged ELP-2000/82 series in meeus/moonposition. Both are referred to
// the ecliptic of date, which is what zodiacal reckoning wants.
package ephemeris

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// Positions holds the longitudes computed for one instant, in degrees
// normalized to [0,360), along with the Julian day they were computed at.
type Positions struct {
	JulianDay     float64
	SunLongitude  float64
	MoonLongitude float64
}

// At computes solar and lunar longitudes for an instant. The UT-based
// Julian day stands in for the dynamical-time argument the series expect;
// the ΔT difference moves the Moon by under a hundredth of a degree,
// well inside the whole-degree granularity callers round to.
func At(t time.Time) Positions {
	jd := julian.TimeToJD(t.UTC())
	sun := solar.ApparentLongitude(base.J2000Century(jd))
	moon, _, _ := moonposition.Position(jd)
	return Positions{
		JulianDay:     jd,
		SunLongitude:  unit.PMod(sun.Deg(), 360),
		MoonLongitude: unit.PMod(moon.Deg(), 360),
	}
}
