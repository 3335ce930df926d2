// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package apparent computes the Sun's apparent ecliptic longitude and its
// rate of change — the quantity the event finder drives to a target value
// by Newton iteration.
package apparent

import (
	"math"

	"github.com/nt-scene/ephemcore/ephemeris"
)

// twoPi is the reduction modulus for longitudes.
const twoPi = 2 * math.Pi

// LambdaApp returns the Sun's apparent geocentric ecliptic longitude at
// jdTT, reduced to [0, 2π): L☉(jdTT) + Δψ(jdTT) − aberration(jdTT). This is
// exactly the longitude ephemeris.SunGeocentricEcliptic already assembles;
// apparent is a named, single-purpose view onto that quantity for the
// event finder (package event) to drive to a target value.
func LambdaApp(jdTT float64) float64 {
	return ephemeris.SunGeocentricEcliptic(jdTT).LonRad
}

// dLambdaStep is the central-difference step, in days, used by
// DLambdaAppDJD. The Sun's apparent longitude changes smoothly on this
// scale (mean motion ~0.9856°/day), so a 1e-3 day step resolves the
// derivative far below the precision Newton's method in package event
// needs to converge.
const dLambdaStep = 1e-3

// DLambdaAppDJD returns d(lambda_app)/d(jd), radians per day, at jdTT.
//
// The dominant term is the Sun's mean motion, 2π/365.2422 rad/day; nutation
// and aberration contribute small periodic corrections. Rather than carry a
// second, separately-differentiated series, this evaluates the derivative
// by central finite difference of LambdaApp, unwrapping the [0, 2π)
// reduction across the sample points so the step never straddles the
// branch cut.
func DLambdaAppDJD(jdTT float64) float64 {
	lm := unwrap(LambdaApp(jdTT-dLambdaStep), 0)
	l0 := unwrap(LambdaApp(jdTT), lm)
	lp := unwrap(LambdaApp(jdTT+dLambdaStep), l0)
	return (lp - lm) / (2 * dLambdaStep)
}

// unwrap adjusts x by a multiple of 2π so it lies within π of ref.
func unwrap(x, ref float64) float64 {
	for x-ref > math.Pi {
		x -= twoPi
	}
	for x-ref < -math.Pi {
		x += twoPi
	}
	return x
}
