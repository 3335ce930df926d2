// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package state assembles the per-frame celestial state vector: Earth
// heliocentric position, Moon geocentric position, and the sub-solar
// point, written into a single fixed-size buffer with no per-call
// allocation. It is the one function a real-time host is expected to
// call every rendered frame.
package state

import (
	"math"
	"sync"

	"github.com/nt-scene/ephemcore/ephemeris"
	"github.com/nt-scene/ephemcore/subsolar"
	"github.com/nt-scene/ephemcore/timescale"
)

// Len is the fixed number of f64 slots the buffer carries.
const Len = 11

// Slot offsets into the buffer, normative and stable.
const (
	SlotSunX = iota
	SlotSunY
	SlotSunZ
	SlotMoonX
	SlotMoonY
	SlotMoonZ
	SlotEarthX
	SlotEarthY
	SlotEarthZ
	SlotSubSolarLonEast
	SlotSubSolarLat
)

// Status bit flags, combinable, reported by LastStatus after a
// ComputeState call.
const (
	StatusOK            uint32 = 0
	StatusNonFiniteInput uint32 = 1 << 0
	StatusPreTable       uint32 = 1 << 1
)

// buffer is the module-private, single-writer state vector. It is the
// only heap allocation the hot path ever touches, and it happens once,
// here, at package init.
var buffer [Len]float64

// lastStatus is set by every ComputeState call and read back through
// LastStatus; like buffer, it is guarded by mu.
var lastStatus uint32

// mu guards buffer and lastStatus against the rare case of an off-frame
// caller (tests, diagnostics) racing the frame loop; it adds no cost to
// the documented single-threaded calling discipline, which never
// contends it.
var mu sync.Mutex

// ComputeState computes the full celestial state for jdUTC and writes it
// into the module's buffer, returning a pointer to slot 0. It never
// allocates after init and never panics: a non-finite jdUTC zeros the
// buffer and sets StatusNonFiniteInput in the status word retrievable via
// LastStatus, rather than propagating an error.
//
// The host must call this exactly once per rendered frame, before
// reading any slot; see the module's host-adapter discipline.
func ComputeState(jdUTC float64) *float64 {
	mu.Lock()
	defer mu.Unlock()

	if math.IsNaN(jdUTC) || math.IsInf(jdUTC, 0) {
		buffer = [Len]float64{}
		lastStatus = StatusNonFiniteInput
		return &buffer[0]
	}

	jdTT, ttStatus := timescale.TTFromUTC(jdUTC)
	status := uint32(StatusOK)
	if ttStatus == timescale.PreTable {
		status |= StatusPreTable
	}

	earth := ephemeris.EclipticToCartesian(ephemeris.EarthHeliocentricEcliptic(jdTT))
	moon := ephemeris.EclipticToCartesian(ephemeris.MoonGeocentricEcliptic(jdTT))
	sub := subsolar.At(jdTT, jdUTC)

	buffer[SlotSunX] = 0
	buffer[SlotSunY] = 0
	buffer[SlotSunZ] = 0
	buffer[SlotMoonX] = moon.X
	buffer[SlotMoonY] = moon.Y
	buffer[SlotMoonZ] = moon.Z
	buffer[SlotEarthX] = earth.X
	buffer[SlotEarthY] = earth.Y
	buffer[SlotEarthZ] = earth.Z
	buffer[SlotSubSolarLonEast] = sub.LonEastRad
	buffer[SlotSubSolarLat] = sub.LatRad

	lastStatus = status
	return &buffer[0]
}

// LastStatus reports the status word set by the most recent ComputeState
// call: a bitwise combination of StatusNonFiniteInput and StatusPreTable,
// or StatusOK if neither condition applied.
func LastStatus() uint32 {
	mu.Lock()
	defer mu.Unlock()
	return lastStatus
}

// View returns a read-only snapshot of the current buffer contents,
// useful for tests and diagnostics; hosts on the hot path should instead
// read through the pointer ComputeState returns to avoid the copy.
func View() [Len]float64 {
	mu.Lock()
	defer mu.Unlock()
	return buffer
}

// Ptr returns a stable pointer to slot 0 of the buffer without
// recomputing it, for bridges that separate "compute" from "fetch
// pointer" into two boundary calls.
func Ptr() *float64 {
	return &buffer[0]
}
