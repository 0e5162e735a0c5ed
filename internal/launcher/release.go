package launcher

import "math"

const (
	// swingArc is the angular travel of the arm from cocked to the
	// stop, fixed by the frame geometry rather than configurable.
	swingArc = 3.0 * math.Pi / 4.0

	// efficiency covers friction and non-ideal energy transfer from
	// the torsion bundle into the swinging system.
	efficiency = 0.85
)

// Release is the projectile state at the instant it separates from
// the arm: position relative to the ground under the pivot, velocity
// in the launch plane.
type Release struct {
	X, Y   float64 // m
	VX, VY float64 // m/s
}

// Speed returns the release speed magnitude.
func (r Release) Speed() float64 { return math.Hypot(r.VX, r.VY) }

// DeriveRelease computes the release state from a spec by closed-form
// energy balance. No swing-phase integration happens here; keeping
// this analytic means the solver sees a response with no timestep
// noise.
//
// The arm plus tip projectile rotate about the pivot with inertia
// m_arm*L^2/3 + m_proj*L^2. The torsion bundle stores 1/2*k*arc^2
// over the fixed swing arc; after the efficiency factor the remainder
// is rotational kinetic energy 1/2*I*w^2, giving the tangential
// release speed w*L.
func DeriveRelease(s Spec) Release {
	l2 := s.ArmLength * s.ArmLength
	inertia := s.ArmMass*l2/3 + s.ProjectileMass*l2

	stored := 0.5 * s.Stiffness * swingArc * swingArc
	kinetic := efficiency * stored

	omega := math.Sqrt(2 * kinetic / inertia)
	speed := omega * s.ArmLength

	theta := s.LaunchAngle * math.Pi / 180

	// At separation the arm has rotated past vertical; the arm angle
	// mirrors the launch angle about the vertical, so the tip sits
	// behind the pivot while the velocity points downrange.
	armAngle := math.Pi - theta

	return Release{
		X:  s.ArmLength * math.Cos(armAngle),
		Y:  s.PivotHeight() + s.ArmLength*math.Sin(armAngle),
		VX: speed * math.Cos(theta),
		VY: speed * math.Sin(theta),
	}
}
