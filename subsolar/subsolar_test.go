// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

package subsolar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nt-scene/ephemcore/julian"
	"github.com/nt-scene/ephemcore/subsolar"
)

func TestAtLatitudeBoundedByObliquity(t *testing.T) {
	for _, jd := range []float64{
		julian.CalendarGregorianToJD(2024, 3, 20),
		julian.CalendarGregorianToJD(2024, 6, 21),
		julian.CalendarGregorianToJD(2024, 9, 22),
		julian.CalendarGregorianToJD(2024, 12, 21),
	} {
		p := subsolar.At(jd, jd)
		assert.LessOrEqual(t, math.Abs(p.LatRad), 23.45*math.Pi/180+0.01)
	}
}

func TestAtSummerSolsticeLatitudeNearMaxObliquity(t *testing.T) {
	jd := julian.CalendarGregorianToJD(2024, 6, 21) + 9.0/24 // near solstice instant
	p := subsolar.At(jd, jd)
	assert.InDelta(t, 23.44*math.Pi/180, p.LatRad, 0.01)
}

func TestAtLongitudeInRange(t *testing.T) {
	jd := julian.CalendarGregorianToJD(2024, 1, 1)
	p := subsolar.At(jd, jd)
	assert.GreaterOrEqual(t, p.LonEastRad, -math.Pi)
	assert.LessOrEqual(t, p.LonEastRad, math.Pi)
}
