// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package timescale converts between UTC and Terrestrial Time via the
// historical leap-second table plus the fixed 32.184 s TT−TAI offset.
package timescale

import (
	"sort"

	"github.com/nt-scene/ephemcore/julian"
)

// LeapEntry is one entry of the leap-second table: the JD_UTC at which a
// TAI−UTC offset (seconds) takes effect, valid until the next entry.
type LeapEntry struct {
	JDUTCStart  float64
	TAIMinusUTC float64
}

// calEntry is the human-readable form leap entries are authored in; the
// package builds the JD-keyed table from these at init time so the table
// reads as a calendar history rather than a list of opaque floats.
type calEntry struct {
	y, m    int
	d       float64
	leapSec float64
}

// history is the IERS Bulletin C leap-second history, TAI−UTC in effect
// from each date's 0h UTC onward.
var history = []calEntry{
	{1972, 1, 1, 10},
	{1972, 7, 1, 11},
	{1973, 1, 1, 12},
	{1974, 1, 1, 13},
	{1975, 1, 1, 14},
	{1976, 1, 1, 15},
	{1977, 1, 1, 16},
	{1978, 1, 1, 17},
	{1979, 1, 1, 18},
	{1980, 1, 1, 19},
	{1981, 7, 1, 20},
	{1982, 7, 1, 21},
	{1983, 7, 1, 22},
	{1985, 7, 1, 23},
	{1988, 1, 1, 24},
	{1990, 1, 1, 25},
	{1991, 1, 1, 26},
	{1992, 7, 1, 27},
	{1993, 7, 1, 28},
	{1994, 7, 1, 29},
	{1996, 1, 1, 30},
	{1997, 7, 1, 31},
	{1999, 1, 1, 32},
	{2006, 1, 1, 33},
	{2009, 1, 1, 34},
	{2012, 7, 1, 35},
	{2015, 7, 1, 36},
	{2017, 1, 1, 37},
}

// defaultTable is built once at init from history and never mutated;
// activeTable is what lookups actually consult and may be swapped by
// SetLeapTable for tests.
var defaultTable []LeapEntry
var activeTable []LeapEntry

func init() {
	defaultTable = make([]LeapEntry, len(history))
	for i, c := range history {
		defaultTable[i] = LeapEntry{
			JDUTCStart:  julian.CalendarGregorianToJD(c.y, c.m, c.d),
			TAIMinusUTC: c.leapSec,
		}
	}
	activeTable = defaultTable
}

// ttMinusTAI is the fixed offset between Terrestrial Time and
// International Atomic Time, in seconds.
const ttMinusTAI = 32.184

// SecPerDay is the number of SI seconds in a day.
const SecPerDay = 86400.0

// Status reports whether a conversion fell outside the leap-second table's
// documented coverage.
type Status int

const (
	// OK means jdUTC fell within the table's covered range.
	OK Status = iota
	// PreTable means jdUTC precedes the earliest leap entry; the
	// earliest entry's offset was used.
	PreTable
)

// leapSecondOffset returns the TAI−UTC offset in effect at jdUTC and
// whether the lookup fell before the table's first entry.
func leapSecondOffset(jdUTC float64) (offset float64, status Status) {
	t := activeTable
	if len(t) == 0 || jdUTC < t[0].JDUTCStart {
		if len(t) == 0 {
			return 0, PreTable
		}
		return t[0].TAIMinusUTC, PreTable
	}
	// largest entry with JDUTCStart <= jdUTC
	i := sort.Search(len(t), func(i int) bool { return t[i].JDUTCStart > jdUTC })
	return t[i-1].TAIMinusUTC, OK
}

// TTFromUTC converts jd_utc to jd_tt: jd_utc + (TAI−UTC)/86400 + 32.184/86400,
// using the leap-second entry active at jd_utc. If jd_utc precedes the
// earliest leap entry, the earliest entry's offset is used and status
// reports PreTable — the function never panics.
func TTFromUTC(jdUTC float64) (jdTT float64, status Status) {
	offset, status := leapSecondOffset(jdUTC)
	return jdUTC + (offset+ttMinusTAI)/SecPerDay, status
}

// UTCFromTT is the inverse of TTFromUTC. Because the leap entry active at
// jd_utc is a function of jd_utc (not jd_tt), this iterates the lookup at
// the resulting estimate to resolve entries near a leap-second boundary;
// two iterations always suffice since TT−UTC changes only by whole seconds
// between entries.
func UTCFromTT(jdTT float64) (jdUTC float64, status Status) {
	jdUTC = jdTT
	for i := 0; i < 2; i++ {
		offset, s := leapSecondOffset(jdUTC)
		status = s
		jdUTC = jdTT - (offset+ttMinusTAI)/SecPerDay
	}
	return jdUTC, status
}

// SetLeapTable installs table as the active leap-second table and returns
// the table it replaced. Test-only hook; the core never mutates the table
// on its own.
func SetLeapTable(table []LeapEntry) (previous []LeapEntry) {
	previous = activeTable
	activeTable = table
	return previous
}

// ClearOverride restores the built-in historical leap-second table.
func ClearOverride() {
	activeTable = defaultTable
}
