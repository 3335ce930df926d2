// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package subsolar derives the sub-solar point on Earth's surface — the
// geographic longitude and latitude directly beneath the Sun — from the
// Sun's apparent ecliptic longitude and the apparent sidereal time at
// Greenwich.
package subsolar

import (
	"math"

	"github.com/nt-scene/ephemcore/apparent"
	"github.com/nt-scene/ephemcore/ephemeris"
	"github.com/nt-scene/ephemcore/sidereal"
)

// Point is the sub-solar point, east-positive longitude and latitude, both
// in radians.
type Point struct {
	LonEastRad float64
	LatRad     float64
}

// reduceToPMPi reduces x to (−π, π].
func reduceToPMPi(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x > math.Pi {
		x -= 2 * math.Pi
	} else if x <= -math.Pi {
		x += 2 * math.Pi
	}
	return x
}

// At computes the sub-solar point for the given TT and UT1 Julian dates.
// jdUT1 is treated as jd_utc by the caller (UT1−UTC is always under 0.9s,
// far below anything visible in a real-time scene — see package sidereal).
func At(jdTT, jdUT1 float64) Point {
	λ := apparent.LambdaApp(jdTT)
	ε := ephemeris.TrueObliquity(jdTT)
	sλ, cλ := math.Sincos(λ)
	sε, cε := math.Sincos(ε)

	ra := math.Atan2(sλ*cε, cλ)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(sε * sλ)

	θast := sidereal.ApparentRad(jdUT1)

	return Point{
		LonEastRad: reduceToPMPi(ra - θast),
		LatRad:     dec,
	}
}
