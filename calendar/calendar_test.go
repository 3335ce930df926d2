// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nt-scene/ephemcore/calendar"
)

func TestNTComponentsBase(t *testing.T) {
	c := calendar.NTComponents(int64(calendar.E0), 0)
	assert.Equal(t, 0, c.D)
	assert.Equal(t, 0, c.DHigh)
	assert.Equal(t, 0, c.Y)
	assert.False(t, c.Clamped)
}

func TestNTComponentsPreE0Clamps(t *testing.T) {
	c := calendar.NTComponents(int64(calendar.E0)-86400000, 0)
	assert.Equal(t, 0, c.D)
	assert.Equal(t, 0, c.DHigh)
	assert.Equal(t, 0, c.Y)
	assert.True(t, c.Clamped)
}

func TestTableHasAtLeast30000Entries(t *testing.T) {
	assert.GreaterOrEqual(t, calendar.Len(), 30000)
}

func TestTableMonotonic(t *testing.T) {
	// (y, d) pairs, interpreted as y*365+d, must never decrease as the
	// sampled epoch advances: the simulation never revisits or skips
	// backwards. Two samples can resolve to the same entry, so equal
	// ordinals are allowed.
	prevOrdinal := -1
	for i := 0; i < 400; i++ {
		epoch := calendar.E0 + float64(i)*calendar.Delta
		cur := calendar.NTComponents(int64(epoch), 0)
		ordinal := cur.Y*365 + cur.DHigh*10 + cur.D
		assert.GreaterOrEqual(t, ordinal, prevOrdinal)
		prevOrdinal = ordinal
	}
}

func TestIntercalaryPairSeparatedByDeltaPrime(t *testing.T) {
	// Walk the table by stepping from E0 using nominal Delta cadence until
	// we land inside year YStar, day DStar. Lookups resolve whole days, and
	// the day boundary reached at atMarker+DeltaPrime already lies past both
	// DeltaPrime-length entries, so the day advances by two where Delta
	// cadence alone would advance it by one.
	epoch := calendar.E0
	var atMarker float64
	for i := 0; i < 5000; i++ {
		c := calendar.NTComponents(int64(epoch), 0)
		if c.Y == calendar.YStar && c.DHigh*10+c.D == calendar.DStar {
			atMarker = epoch
			break
		}
		epoch += calendar.Delta
	}
	assert.NotZero(t, atMarker)

	next := calendar.NTComponents(int64(atMarker+calendar.DeltaPrime+1), 0)
	assert.Equal(t, calendar.YStar, next.Y)
	assert.Equal(t, calendar.DStar+2, next.DHigh*10+next.D)
}
