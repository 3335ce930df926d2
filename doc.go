// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package ephemcore is a deterministic, single-entry ephemeris engine for
// real-time 3D scenes: one call per rendered frame produces heliocentric
// Earth position, geocentric Moon position, and the sub-solar point, and
// exposes them to a host renderer through a zero-copy view over a fixed
// 11-slot f64 buffer.
//
// The package tree below this one carries the astronomical theories the
// engine composes: package timescale converts UTC to Terrestrial Time,
// package ephemeris wraps the VSOP87-derived solar/Earth series and the
// ELP-2000/82 lunar series together with nutation and FK5 frame bias,
// package apparent computes the Sun's apparent ecliptic longitude and its
// derivative, package event locates solstice/equinox instants by Newton
// iteration on that longitude, package subsolar derives the sub-solar
// longitude/latitude, package state assembles the per-frame buffer, and
// package calendar builds the project's quantum (NT) calendar table.
//
// This package itself is the host boundary: bridge.go exposes the native
// Go entry points a host process embeds directly, and bridge_wasm.go
// (built only under GOOS=wasip1) exposes the same contract
// through //go:wasmexport functions for a WebAssembly host.
//
// Frame discipline: a host must call ComputeState exactly once per
// rendered frame, before reading any slot, and must never call it
// concurrently with itself. Everything else — NextEvent, NTComponents,
// the leap-table override hooks — is off-frame and safe to call from UI
// overlays at human cadences.
package ephemcore
