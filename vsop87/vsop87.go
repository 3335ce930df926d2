// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package vsop87 computes the heliocentric position of Earth.
//
// Full VSOP87 carries several thousand periodic terms per planet, keyed to
// a coefficient table (Appendix III) that is not reproduced here. Earth's
// heliocentric longitude is related to the Sun's geocentric longitude by an
// exact 180° rotation, so this package derives L, B, R from the same low
// order solar series used by package solar (Meeus ch. 25) rather than
// duplicating Appendix III. R and the longitude carry the accuracy of the
// 25.x formulas, about 0.01°, not the arcsecond level of full VSOP87, and
// event instants derived from them are off by minutes; B follows only
// the FK5 frame-bias term, since the 25.x series does not model the Sun's
// (very small, at most a few arcseconds) geocentric ecliptic latitude.
package vsop87

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/nt-scene/ephemcore/base"
	"github.com/nt-scene/ephemcore/solar"
)

// EarthHeliocentric returns Earth's heliocentric ecliptic position at the
// given JDE: L longitude, B latitude, R radius in AU. Values are referred
// to the mean dynamical ecliptic and equinox of date, FK5 frame, and do
// not include nutation or aberration — see package apparent for those.
func EarthHeliocentric(jde float64) (L, B unit.Angle, R float64) {
	T := base.J2000Century(jde)
	s, _ := solar.True(T)
	L = s + unit.Angle(math.Pi)
	// FK5 correction, (25.9) p. 166, applied the same way whether L,B come
	// from full VSOP87 series or this module's low order solar formulas:
	// it corrects the dynamical-equinox frame, not the series precision.
	λp := base.Horner(T, L.Rad(), -1.397*math.Pi/180, -.00031*math.Pi/180)
	sλp, cλp := math.Sincos(λp)
	Δβ := unit.AngleFromSec(.03916).Mul(cλp - sλp)
	L = (L - unit.AngleFromSec(.09033)).Mod1()
	B = Δβ
	R = solar.Radius(T)
	return
}
