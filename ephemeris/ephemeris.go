// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package ephemeris composes the lunar, solar, and nutation theories into
// the spherical and Cartesian positions the state assembler needs each
// frame: geocentric Moon, heliocentric Earth, and the nutation/obliquity
// pair used throughout the rest of the core.
package ephemeris

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/nt-scene/ephemcore/base"
	"github.com/nt-scene/ephemcore/moonposition"
	"github.com/nt-scene/ephemcore/nutation"
	"github.com/nt-scene/ephemcore/vsop87"
)

// EclipticSpherical is a spherical position referred to the ecliptic:
// longitude and latitude in radians, range in astronomical units.
type EclipticSpherical struct {
	LonRad float64
	LatRad float64
	RAU    float64
}

// Cartesian3 is a right-handed rectangular position in astronomical units.
type Cartesian3 struct {
	X, Y, Z float64
}

// EclipticToCartesian converts a spherical ecliptic position to rectangular
// coordinates, right-handed ecliptic of date.
func EclipticToCartesian(s EclipticSpherical) Cartesian3 {
	cl, sl := math.Cos(s.LonRad), math.Sin(s.LonRad)
	cb, sb := math.Cos(s.LatRad), math.Sin(s.LatRad)
	return Cartesian3{
		X: s.RAU * cb * cl,
		Y: s.RAU * cb * sl,
		Z: s.RAU * sb,
	}
}

// SunGeocentricEcliptic returns the geocentric apparent position of the Sun:
// FK5 frame correction and aberration applied, nutation in longitude
// applied. Longitude is reduced to [0, 2π).
func SunGeocentricEcliptic(jdTT float64) EclipticSpherical {
	L, _, R := vsop87.EarthHeliocentric(jdTT)
	// the geocentric Sun is the antipode of heliocentric Earth; Earth's
	// heliocentric latitude already folds in the FK5 frame-bias term, so
	// the geocentric solar latitude is zero at this precision.
	s := (L + unit.Angle(math.Pi)).Mod1()
	Δψ, _ := nutation.Nutation(jdTT)
	a := aberration(R)
	return EclipticSpherical{
		LonRad: (s + Δψ + a).Mod1().Rad(),
		LatRad: 0,
		RAU:    R,
	}
}

// aberration is the low order correction for the aberration of light,
// (25.10) of the solar formulas, a function of Sun-Earth distance alone.
func aberration(R float64) unit.Angle {
	return unit.AngleFromSec(-20.4898).Div(R)
}

// MoonGeocentricEcliptic returns the geocentric position of the Moon with
// nutation in longitude applied. Distance is converted from km to AU.
func MoonGeocentricEcliptic(jdTT float64) EclipticSpherical {
	λ, β, Δkm := moonposition.Position(jdTT)
	Δψ, _ := nutation.Nutation(jdTT)
	const kmPerAU = 149597870.7
	return EclipticSpherical{
		LonRad: (λ + Δψ).Mod1().Rad(),
		LatRad: β.Rad(),
		RAU:    Δkm / kmPerAU,
	}
}

// EarthHeliocentricEcliptic returns the heliocentric position of Earth,
// mean dynamical ecliptic and equinox of date, FK5 frame. Nutation is not
// applied: heliocentric Earth position is used for scene placement of the
// Earth relative to the Sun, not for apparent-longitude event timing.
func EarthHeliocentricEcliptic(jdTT float64) EclipticSpherical {
	L, B, R := vsop87.EarthHeliocentric(jdTT)
	return EclipticSpherical{LonRad: L.Rad(), LatRad: B.Rad(), RAU: R}
}

// Nutation returns nutation in longitude (Δψ) and obliquity (Δε), radians.
func Nutation(jdTT float64) (ΔψRad, ΔεRad float64) {
	Δψ, Δε := nutation.Nutation(jdTT)
	return Δψ.Rad(), Δε.Rad()
}

// MeanObliquity returns mean obliquity of the ecliptic, ε0, radians.
func MeanObliquity(jdTT float64) float64 {
	return nutation.MeanObliquity(jdTT).Rad()
}

// TrueObliquity returns true obliquity ε = ε0 + Δε, radians.
func TrueObliquity(jdTT float64) float64 {
	_, Δε := nutation.Nutation(jdTT)
	return (nutation.MeanObliquity(jdTT) + Δε).Rad()
}

// J2000Century is re-exported from package base for callers that need the
// Julian-century argument used throughout the solar series.
func J2000Century(jdTT float64) float64 {
	return base.J2000Century(jdTT)
}
