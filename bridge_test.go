// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package ephemcore_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/nt-scene/ephemcore"
)

func TestComputeStateAndStatePtrAgree(t *testing.T) {
	ephemcore.ComputeState(2451545.0)
	ptr := ephemcore.StatePtr()
	assert.NotEqual(t, unsafe.Pointer(nil), ptr)

	view := (*[11]float64)(ptr)
	assert.Equal(t, 0.0, view[0])
	assert.Equal(t, ephemcore.StatusOK, ephemcore.LastStatus())
}

func TestStateLenIsEleven(t *testing.T) {
	assert.Equal(t, 11, ephemcore.StateLen())
}

func TestNextEventFacade(t *testing.T) {
	got, err := ephemcore.NextEvent(ephemcore.WinterSolstice, 2460311.5)
	assert.NoError(t, err)
	assert.Greater(t, got, 2460311.5)
}

func TestNTComponentsFacadeBase(t *testing.T) {
	d, dHigh, y, clamped := ephemcore.NTComponents(1344643200000, 0)
	assert.Equal(t, 0, d)
	assert.Equal(t, 0, dHigh)
	assert.Equal(t, 0, y)
	assert.False(t, clamped)
}

func TestLeapTableOverrideFacade(t *testing.T) {
	defer ephemcore.ClearOverride()
	prev := ephemcore.SetLeapTable(nil)
	assert.NotNil(t, prev)
}
