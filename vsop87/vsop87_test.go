// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package vsop87_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nt-scene/ephemcore/julian"
	"github.com/nt-scene/ephemcore/vsop87"
)

func TestEarthHeliocentric(t *testing.T) {
	// Meeus example 25.a, 1992 October 13, 0h TD: true geocentric solar
	// longitude 199.90988, R 0.99766 AU.
	jde := julian.CalendarGregorianToJD(1992, 10, 13)
	L, _, R := vsop87.EarthHeliocentric(jde)

	wantL := 199.90988 + 180
	for wantL >= 360 {
		wantL -= 360
	}
	assert.InDelta(t, wantL, L.Deg(), 0.01)
	assert.InDelta(t, 0.99766, R, 1e-4)
}

func TestEarthHeliocentricRadiusStaysNearOneAU(t *testing.T) {
	for _, jde := range []float64{2451545.0, 2460000.0, 2415020.5} {
		_, _, R := vsop87.EarthHeliocentric(jde)
		assert.InDelta(t, 1.0, R, 0.02)
	}
}
