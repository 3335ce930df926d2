// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package calendar builds and queries the quantum (NT) calendar table: a
// monotonic mapping from Unix epoch milliseconds to a (day, year) pair,
// generated once at init by forward simulation from a fixed base epoch to
// a fixed horizon, with a periodic intercalary adjustment.
package calendar

import "sort"

// Base constants, normative. E0 is the table's first epoch in Unix
// milliseconds; Delta is the ordinary day length; DeltaPrime is the
// shortened intercalary day length; YStar/DStar identify the (year, day)
// at which the intercalary pair is inserted; EMax is the horizon past
// which the table stops growing.
const (
	E0         = 1344643200000.0
	Delta      = 86459178.082191780821918
	DeltaPrime = 43229589.41095890410959
	YStar      = 11
	DStar      = 121
	EMax       = 4090089600000.0
)

// Entry is one row of the table: the epoch at which (d, y) begins.
type Entry struct {
	EpochMs float64
	D       int
	Y       int
}

var table []Entry

func init() {
	table = build()
}

// build runs the forward simulation described by the table's constants:
// starting from (E0, d=0, y=0), repeatedly append entries while
// epoch_ms < EMax. At the configured intercalary marker the step advances
// by DeltaPrime twice (each incrementing d) instead of once by Delta;
// otherwise it advances once by Delta. Either way d wraps to 0 and y
// increments when d reaches 365.
func build() []Entry {
	entries := make([]Entry, 0, 32000)
	epoch, d, y := E0, 0, 0
	entries = append(entries, Entry{EpochMs: epoch, D: d, Y: y})
	for epoch < EMax {
		if y == YStar && d == DStar {
			epoch, d, y = step(epoch, d, y, DeltaPrime)
			entries = append(entries, Entry{EpochMs: epoch, D: d, Y: y})
			epoch, d, y = step(epoch, d, y, DeltaPrime)
			entries = append(entries, Entry{EpochMs: epoch, D: d, Y: y})
		} else {
			epoch, d, y = step(epoch, d, y, Delta)
			entries = append(entries, Entry{EpochMs: epoch, D: d, Y: y})
		}
	}
	return entries
}

// step advances epoch by deltaMs, increments d, and wraps d/y at 365.
func step(epoch float64, d, y int, deltaMs float64) (float64, int, int) {
	epoch += deltaMs
	d++
	if d == 365 {
		d = 0
		y++
	}
	return epoch, d, y
}

// Components is the decoded, host-facing result of a lookup.
type Components struct {
	D       int // 0-9, ones digit of day-of-cycle
	DHigh   int // tens digit and above of day-of-cycle
	Y       int
	Clamped bool // epochMs preceded E0; result clamped to the first entry
}

// NTComponents looks up the table entry active at epochMs after adjusting
// for the caller's timezone offset, and decomposes the day into two
// zero-padded digit groups for display. Returns the clamp status rather
// than an error: a pre-E0 query is a documented boundary condition, not a
// failure.
func NTComponents(epochMs int64, tzOffsetMin int32) Components {
	adjusted := float64(epochMs) - float64(tzOffsetMin)*60000
	dayMs := 86400000.0
	adjusted = float64(int64(adjusted/dayMs)) * dayMs

	if len(table) == 0 || adjusted < table[0].EpochMs {
		return Components{D: 0, DHigh: 0, Y: 0, Clamped: true}
	}

	i := sort.Search(len(table), func(i int) bool { return table[i].EpochMs > adjusted })
	e := table[i-1]
	return Components{D: e.D % 10, DHigh: e.D / 10, Y: e.Y}
}

// Len reports the number of entries in the generated table, mostly useful
// for sanity-checking the init-time simulation.
func Len() int {
	return len(table)
}
