// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package timescale_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nt-scene/ephemcore/timescale"
)

func TestTTFromUTCRoundTrip(t *testing.T) {
	for _, jdUTC := range []float64{2441317.5, 2451545.0, 2457754.5, 2460000.0} {
		jdTT, _ := timescale.TTFromUTC(jdUTC)
		back, _ := timescale.UTCFromTT(jdTT)
		assert.InDelta(t, jdUTC, back, 1e-9)
	}
}

func TestTTFromUTCOffset(t *testing.T) {
	// 2017-01-01 onward: TAI-UTC = 37s, TT-TAI = 32.184s
	jdUTC := 2457754.5
	jdTT, status := timescale.TTFromUTC(jdUTC)
	assert.Equal(t, timescale.OK, status)
	wantOffsetDays := (37.0 + 32.184) / timescale.SecPerDay
	assert.InDelta(t, jdUTC+wantOffsetDays, jdTT, 1e-12)
}

func TestTTFromUTCPreTableClamps(t *testing.T) {
	jdUTC := 2400000.0 // long before 1972
	jdTT, status := timescale.TTFromUTC(jdUTC)
	assert.Equal(t, timescale.PreTable, status)
	wantOffsetDays := (10.0 + 32.184) / timescale.SecPerDay
	assert.InDelta(t, jdUTC+wantOffsetDays, jdTT, 1e-12)
}

func TestTTFromUTCFutureUsesLatestEntry(t *testing.T) {
	jdUTC := 2460000.0 // well after 2017-01-01, the latest known entry
	jdTT, status := timescale.TTFromUTC(jdUTC)
	assert.Equal(t, timescale.OK, status)
	wantOffsetDays := (37.0 + 32.184) / timescale.SecPerDay
	assert.InDelta(t, jdUTC+wantOffsetDays, jdTT, 1e-12)
}

func TestLeapBoundaryTransition(t *testing.T) {
	// 1972-07-01 is the boundary where TAI-UTC steps from 10 to 11.
	before := 2441317.5 // 1972-01-01, offset 10
	after := 2441499.5  // 1972-07-01, offset 11
	_, sb := timescale.TTFromUTC(before)
	_, sa := timescale.TTFromUTC(after)
	assert.Equal(t, timescale.OK, sb)
	assert.Equal(t, timescale.OK, sa)

	jdTTBefore, _ := timescale.TTFromUTC(before)
	jdTTAfter, _ := timescale.TTFromUTC(after)
	deltaSeconds := (jdTTAfter - jdTTBefore - (after - before)) * timescale.SecPerDay
	// tolerance is 1e-9 day, as in the round-trip tests: float64 Julian
	// Dates near 2.44e6 resolve only about 4.7e-10 day (~40 µs)
	assert.InDelta(t, 1.0, deltaSeconds, 1e-9*timescale.SecPerDay)
}

func TestSetLeapTableOverrideAndClear(t *testing.T) {
	custom := []timescale.LeapEntry{{JDUTCStart: 0, TAIMinusUTC: 99}}
	prev := timescale.SetLeapTable(custom)
	jdTT, status := timescale.TTFromUTC(2451545.0)
	assert.Equal(t, timescale.OK, status)
	assert.InDelta(t, 2451545.0+(99+32.184)/timescale.SecPerDay, jdTT, 1e-12)

	timescale.ClearOverride()
	jdTT2, _ := timescale.TTFromUTC(2451545.0)
	assert.NotEqual(t, jdTT, jdTT2)
	_ = prev
}

func TestRoundTripWithinOneNanosecondDay(t *testing.T) {
	jdUTC := 2459945.3
	jdTT, _ := timescale.TTFromUTC(jdUTC)
	back, _ := timescale.UTCFromTT(jdTT)
	assert.Less(t, math.Abs(back-jdUTC), 1e-9)
}
