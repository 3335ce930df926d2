// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

//go:build wasip1

package ephemcore

import (
	"math"
	"unsafe"

	"github.com/nt-scene/ephemcore/calendar"
	"github.com/nt-scene/ephemcore/event"
	"github.com/nt-scene/ephemcore/state"
)

// This file is the WebAssembly half of the host-adapter contract: each
// exported function is a thin, allocation-free wrapper over the same
// package functions that bridge.go wraps, restricted to the scalar types a wasm host can
// pass and return directly. Nothing here does astronomy; it only adapts
// calling convention.

// wasmComputeState writes the per-frame state into the module's buffer.
// The host must call this exactly once per rendered frame before reading
// any slot via wasmStatePtr.
//
//go:wasmexport compute_state
func wasmComputeState(jdUTC float64) {
	state.ComputeState(jdUTC)
}

// wasmStatePtr returns the linear-memory offset of state slot 0, as a
// 32-bit offset suitable for a host's typed array view.
//
//go:wasmexport state_ptr
func wasmStatePtr() uint32 {
	return uint32(uintptr(unsafe.Pointer(state.Ptr())))
}

// wasmStateLen returns the fixed number of f64 slots in the state buffer.
//
//go:wasmexport state_len
func wasmStateLen() uint32 {
	return uint32(state.Len)
}

// wasmLastStatus returns the status word set by the most recent
// compute_state call.
//
//go:wasmexport last_status
func wasmLastStatus() uint32 {
	return state.LastStatus()
}

// wasmNextEvent locates the next instant, strictly after jdUTCStart, at
// which kind's defining solar longitude is reached. kind maps to
// event.Kind by its iota ordinal. A solver failure is reported as NaN;
// the host should treat NaN as "unavailable" rather than a valid instant.
//
//go:wasmexport next_event
func wasmNextEvent(kind uint32, jdUTCStart float64) float64 {
	jd, err := event.NextEvent(event.Kind(kind), jdUTCStart)
	if err != nil {
		return math.NaN()
	}
	return jd
}

// wasmNTComponents writes the decomposed (d, d_high, y) triple as three
// consecutive int32 at outPtr, a linear-memory offset the host owns and
// allocates; clamped reports the table's pre-E0 boundary condition.
//
//go:wasmexport nt_components
func wasmNTComponents(epochMs int64, tzOffsetMin int32, outPtr uint32) uint32 {
	c := calendar.NTComponents(epochMs, tzOffsetMin)
	out := (*[3]int32)(unsafe.Pointer(uintptr(outPtr)))
	out[0] = int32(c.D)
	out[1] = int32(c.DHigh)
	out[2] = int32(c.Y)
	if c.Clamped {
		return 1
	}
	return 0
}
