package flight

import (
	"math"

	"github.com/san-kum/torsim/internal/launcher"
)

const (
	// Dt is the fixed integration step.
	Dt = 1.0 / 60.0

	// MaxSteps bounds a single flight (~83 s). Safety rail, not
	// expected to bind under normal parameters.
	MaxSteps = 5000

	gravity    = 9.81
	airDensity = 1.225

	// refArea is a fixed cross-sectional scale applied to the drag
	// coefficient; projectile geometry is not modeled separately.
	refArea = 0.05
)

// Sample is one integration point of a projectile flight.
type Sample struct {
	X, Y   float64 // m
	VX, VY float64 // m/s
	T      float64 // s since release
}

// Speed returns the velocity magnitude at the sample.
func (s Sample) Speed() float64 { return math.Hypot(s.VX, s.VY) }

// Range integrates a flight from the release state to ground impact
// and returns the horizontal position of the impact sample. If the
// step budget runs out first, the last position is returned as an
// approximation; there is no error path.
func Range(rel launcher.Release, spec launcher.Spec) float64 {
	return integrate(rel, spec, nil).X
}

// Path runs the same integration as Range but records every sample,
// release state included, for callers that want the full arc.
func Path(rel launcher.Release, spec launcher.Spec) []Sample {
	path := make([]Sample, 0, 256)
	integrate(rel, spec, func(s Sample) { path = append(path, s) })
	return path
}

// integrate advances the projectile with semi-implicit Euler at the
// fixed step: acceleration from the previous step's velocity, then
// velocity, then position from the updated velocity. Wind enters as a
// constant horizontal force, not as a relative-velocity correction in
// the drag term; a known approximation kept for model compatibility.
func integrate(rel launcher.Release, spec launcher.Spec, observe func(Sample)) Sample {
	cur := Sample{X: rel.X, Y: rel.Y, VX: rel.VX, VY: rel.VY}
	if observe != nil {
		observe(cur)
	}

	windAccel := 0.5 * airDensity * spec.WindSpeed * math.Abs(spec.WindSpeed) *
		spec.DragCoeff * refArea / spec.ProjectileMass

	for i := 0; i < MaxSteps; i++ {
		ax, ay := windAccel, -gravity

		// Zero speed would divide by zero when splitting drag into
		// components; a resting projectile feels no drag.
		if speed := cur.Speed(); speed > 0 {
			drag := 0.5 * airDensity * speed * speed * spec.DragCoeff * refArea
			ax -= drag * (cur.VX / speed) / spec.ProjectileMass
			ay -= drag * (cur.VY / speed) / spec.ProjectileMass
		}

		cur.VX += ax * Dt
		cur.VY += ay * Dt
		cur.X += cur.VX * Dt
		cur.Y += cur.VY * Dt
		cur.T += Dt

		if observe != nil {
			observe(cur)
		}
		if cur.Y <= 0 {
			break
		}
	}
	return cur
}
