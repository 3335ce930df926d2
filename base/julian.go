// Copyright 2013 Sonia Keys
// License: MIT

package base

// Julian and Besselian years described in chapter 21, Precession.
// T, Julian centuries since J2000 described in chapter 22, Nutation.

// JMod is the Julian date of the modified Julian date epoch.
const JMod = 2400000.5

// J2000 is the Julian date corresponding to January 1.5, year 2000.
const J2000 = 2451545.0

// J1900 is the Julian date of the epoch used by some ΔT polynomials.
const J1900 = 2415020.0

// JulianYear and JulianCentury are common periods, in days.
const (
	JulianYear    = 365.25 // days
	JulianCentury = 36525  // days
)

// J2000Century returns the number of Julian centuries since J2000.
//
// The quantity appears as T in a number of time series.
func J2000Century(jde float64) float64 {
	// The formula is given in a number of places in the book, for example
	// (12.1) p. 87.
	// (22.1) p. 143.
	// (25.1) p. 163.
	return (jde - J2000) / JulianCentury
}
