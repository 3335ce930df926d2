// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package ephemcore

import (
	"unsafe"

	"github.com/nt-scene/ephemcore/calendar"
	"github.com/nt-scene/ephemcore/event"
	"github.com/nt-scene/ephemcore/state"
	"github.com/nt-scene/ephemcore/timescale"
)

// EventKind re-exports event.Kind at the module boundary so host code
// need import only this package.
type EventKind = event.Kind

const (
	VernalEquinox   = event.VernalEquinox
	SummerSolstice  = event.SummerSolstice
	AutumnalEquinox = event.AutumnalEquinox
	WinterSolstice  = event.WinterSolstice
)

// Status bits re-exported from package state for LastStatus callers.
const (
	StatusOK             = state.StatusOK
	StatusNonFiniteInput = state.StatusNonFiniteInput
	StatusPreTable       = state.StatusPreTable
)

// ComputeState computes the full per-frame celestial state for jdUTC and
// writes it into the module's fixed buffer. Call exactly once per
// rendered frame, before reading any slot via StatePtr.
func ComputeState(jdUTC float64) {
	state.ComputeState(jdUTC)
}

// StatePtr returns a stable raw pointer to the first of the module's 11
// f64 state slots, reflecting whatever frame the most recent ComputeState
// call wrote. The pointer remains valid for the process's lifetime;
// callers must not retain it past process exit and must not write
// through it.
func StatePtr() unsafe.Pointer {
	return unsafe.Pointer(state.Ptr())
}

// StateLen reports the fixed number of f64 slots in the state buffer.
func StateLen() int {
	return state.Len
}

// LastStatus reports the status word set by the most recent ComputeState
// call.
func LastStatus() uint32 {
	return state.LastStatus()
}

// NextEvent finds the next instant, strictly after jdUTCStart, at which
// kind's defining solar longitude is reached.
func NextEvent(kind EventKind, jdUTCStart float64) (jdUTC float64, err error) {
	return event.NextEvent(kind, jdUTCStart)
}

// NTComponents decomposes epochMs under the quantum calendar's day/year
// rule, adjusted by tzOffsetMin.
func NTComponents(epochMs int64, tzOffsetMin int32) (d, dHigh, y int, clamped bool) {
	c := calendar.NTComponents(epochMs, tzOffsetMin)
	return c.D, c.DHigh, c.Y, c.Clamped
}

// SetLeapTable installs a test leap-second table and returns the one it
// replaced.
func SetLeapTable(table []timescale.LeapEntry) []timescale.LeapEntry {
	return timescale.SetLeapTable(table)
}

// ClearOverride restores the built-in historical leap-second table.
func ClearOverride() {
	timescale.ClearOverride()
}
