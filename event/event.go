// Copyright 2013 Sonia Keys
// License MIT: http://www.opensource.org/licenses/MIT

// Package event finds the instants of solstices and equinoxes: the moments
// the Sun's apparent ecliptic longitude crosses one of the four cardinal
// values, located by Newton's method on package apparent with a bisection
// fallback.
package event

import (
	"fmt"
	"math"

	"github.com/nt-scene/ephemcore/apparent"
	"github.com/nt-scene/ephemcore/timescale"
)

// Kind identifies which of the four seasonal events to locate.
type Kind int

const (
	VernalEquinox Kind = iota
	SummerSolstice
	AutumnalEquinox
	WinterSolstice
)

func (k Kind) String() string {
	switch k {
	case VernalEquinox:
		return "VernalEquinox"
	case SummerSolstice:
		return "SummerSolstice"
	case AutumnalEquinox:
		return "AutumnalEquinox"
	case WinterSolstice:
		return "WinterSolstice"
	default:
		return "Kind(?)"
	}
}

// targetRad returns the apparent solar longitude that defines kind.
func (k Kind) targetRad() float64 {
	switch k {
	case VernalEquinox:
		return 0
	case SummerSolstice:
		return math.Pi / 2
	case AutumnalEquinox:
		return math.Pi
	case WinterSolstice:
		return 3 * math.Pi / 2
	default:
		return 0
	}
}

// SolverFailedError reports that next_event could not converge.
type SolverFailedError struct {
	Reason       string
	LastResidual float64
}

func (e *SolverFailedError) Error() string {
	return fmt.Sprintf("event: solver failed (%s), last residual %.3e rad", e.Reason, e.LastResidual)
}

// meanMotion is the Sun's approximate mean motion, radians per day,
// used only to seed the initial guess.
const meanMotion = 2 * math.Pi / 365.2422

const (
	maxNewtonIter = 12
	epsAng        = 1e-9 // rad
	epsT          = 1e-6 // day
)

// wrapToPi reduces x to (−π, π].
func wrapToPi(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x > math.Pi {
		x -= 2 * math.Pi
	} else if x <= -math.Pi {
		x += 2 * math.Pi
	}
	return x
}

// NextEvent finds the next instant, strictly after jdUTCStart, at which
// kind's defining longitude is reached. It converts the start to TT, seeds
// a guess from mean solar motion, refines by Newton's method against
// package apparent, falls back to bisection if Newton fails to converge,
// and returns the result converted back to UTC.
func NextEvent(kind Kind, jdUTCStart float64) (jdUTC float64, err error) {
	jdTTStart, _ := timescale.TTFromUTC(jdUTCStart)
	target := kind.targetRad()

	// Step 3: seed within ~1 day using the mean motion estimate.
	cur := apparent.LambdaApp(jdTTStart)
	residual := wrapToPi(target - cur)
	if residual <= 0 {
		residual += 2 * math.Pi
	}
	t := jdTTStart + residual/meanMotion

	f := func(tt float64) float64 { return wrapToPi(apparent.LambdaApp(tt) - target) }

	var lastF float64
	converged := false
	for i := 0; i < maxNewtonIter; i++ {
		lastF = f(t)
		if math.Abs(lastF) < epsAng {
			converged = true
			break
		}
		deriv := apparent.DLambdaAppDJD(t)
		if deriv == 0 {
			break
		}
		dt := -lastF / deriv
		t += dt
		if math.Abs(dt) < epsT {
			lastF = f(t)
			converged = true
			break
		}
	}

	if !converged {
		t, lastF, err = bisect(f, t-1, t+1)
		if err != nil {
			return 0, err
		}
	}

	// Invariant: result strictly greater than the start; tie-break by one
	// mean-motion period if Newton/bisection converged exactly on the seed.
	if t <= jdTTStart {
		t += 2 * math.Pi / meanMotion
	}

	result, _ := timescale.UTCFromTT(t)
	_ = lastF
	return result, nil
}

// bisect brackets a root of f on [lo, hi] and bisects to epsT, following
// the bracket-and-refine idiom used for discrete-event search elsewhere in
// this module's ancestry. Returns SolverFailedError if the interval is not
// a valid bracket.
func bisect(f func(float64) float64, lo, hi float64) (t, residual float64, err error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, flo, nil
	}
	if fhi == 0 {
		return hi, fhi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, 0, &SolverFailedError{
			Reason:       "bisection bracket does not straddle a root",
			LastResidual: math.Min(math.Abs(flo), math.Abs(fhi)),
		}
	}
	for hi-lo > epsT {
		mid := (lo + hi) / 2
		fmid := f(mid)
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi, fhi = mid, fmid
		}
	}
	mid := (lo + hi) / 2
	return mid, f(mid), nil
}
