// Package solver inverts the launch model: given a spec carrying a
// target range, it searches for the stiffness (and, if needed, launch
// angle) that reproduces it. The search is deterministic and always
// terminates with the best candidate found; degradation shows up as a
// large Err on the result, never as a failure.
package solver

import (
	"math"

	"github.com/san-kum/torsim/internal/flight"
	"github.com/san-kum/torsim/internal/launcher"
)

const (
	stiffnessMin = 100
	stiffnessMax = 150000
	bisectIters  = 40

	sweepAngleMin  = 15.0
	sweepAngleMax  = 75.0
	sweepAngleStep = 5.0

	// innerTolerance decides whether the requested angle alone is
	// good enough; sweepTolerance decides whether an angle found by
	// the sweep is a materially better fit worth committing.
	innerTolerance = 1.0
	sweepTolerance = 2.0
)

// Result is the best candidate found by Solve. Stiffness and Angle
// are rounded to whole units for reporting; Range and Err come from
// the unrounded candidate.
type Result struct {
	Stiffness     float64
	Angle         float64
	Range         float64
	Err           float64 // |Range - TargetRange|
	AutoCorrected bool    // angle differs from the caller's request
}

// candidate is the accumulator threaded through both search levels.
type candidate struct {
	stiffness float64
	angle     float64
	rng       float64
	err       float64
}

func evalRange(spec launcher.Spec, stiffness, angle float64) float64 {
	spec.Stiffness = stiffness
	spec.LaunchAngle = angle
	return flight.Range(launcher.DeriveRelease(spec), spec)
}

// solveStiffness bisects the stiffness bracket at a fixed angle.
// Range grows monotonically with stiffness, so each midpoint
// evaluation tells which half holds the target. The returned
// candidate is the best of all evaluated midpoints, not the final
// bracket midpoint: on a drag-saturated response the closest point
// seen can precede the last bisection.
func solveStiffness(spec launcher.Spec, angle float64) candidate {
	lo, hi := float64(stiffnessMin), float64(stiffnessMax)
	best := candidate{angle: angle, err: math.Inf(1)}

	for i := 0; i < bisectIters; i++ {
		mid := 0.5 * (lo + hi)
		rng := evalRange(spec, mid, angle)

		if e := math.Abs(rng - spec.TargetRange); e < best.err {
			best = candidate{stiffness: mid, angle: angle, rng: rng, err: e}
		}
		if rng < spec.TargetRange {
			lo = mid
		} else {
			hi = mid
		}
	}
	return best
}

// sweepAngles runs the stiffness search across the fixed angle fan
// and folds the results down to the globally best candidate, seeded
// with the single-angle attempt.
func sweepAngles(spec launcher.Spec, seed candidate) candidate {
	best := seed
	for a := sweepAngleMin; a <= sweepAngleMax; a += sweepAngleStep {
		if c := solveStiffness(spec, a); c.err < best.err {
			best = c
		}
	}
	return best
}

// Solve finds launcher settings matching spec.TargetRange. It first
// bisects stiffness at the requested angle; only if that leaves more
// than innerTolerance of residual error does it sweep the angle fan.
// A swept angle is committed only when it lands within
// sweepTolerance, otherwise the original single-angle best is kept.
func Solve(spec launcher.Spec) Result {
	first := solveStiffness(spec, spec.LaunchAngle)

	pick, corrected := first, false
	if first.err > innerTolerance {
		if swept := sweepAngles(spec, first); swept.err <= sweepTolerance && swept.angle != spec.LaunchAngle {
			pick, corrected = swept, true
		}
	}

	return Result{
		Stiffness:     math.Round(pick.stiffness),
		Angle:         math.Round(pick.angle),
		Range:         pick.rng,
		Err:           pick.err,
		AutoCorrected: corrected,
	}
}
