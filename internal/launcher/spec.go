package launcher

import "errors"

// Domain errors for spec validation.
var (
	ErrArmLength      = errors.New("launcher: arm length must be positive")
	ErrArmMass        = errors.New("launcher: arm mass must be non-negative")
	ErrProjectileMass = errors.New("launcher: projectile mass must be positive")
	ErrLaunchAngle    = errors.New("launcher: launch angle must be in [10, 80] degrees")
	ErrTargetRange    = errors.New("launcher: target range must be positive")
	ErrDragCoeff      = errors.New("launcher: drag coefficient must be non-negative")
)

// Spec holds the structural and environmental parameters of a
// torsion-lever launcher. It is a plain value: every evaluation gets
// its own copy and no field derives another.
type Spec struct {
	Stiffness      float64 // torsion spring constant
	ArmLength      float64 // m
	ArmMass        float64 // kg
	ProjectileMass float64 // kg
	LaunchAngle    float64 // degrees
	TargetRange    float64 // m
	WindSpeed      float64 // m/s, signed horizontal
	DragCoeff      float64 // dimensionless
}

// DefaultSpec returns a mid-weight field launcher.
func DefaultSpec() Spec {
	return Spec{
		Stiffness:      4000,
		ArmLength:      6,
		ArmMass:        25,
		ProjectileMass: 10,
		LaunchAngle:    45,
		TargetRange:    150,
		WindSpeed:      0,
		DragCoeff:      0.05,
	}
}

func (s Spec) Validate() error {
	if s.ArmLength <= 0 {
		return ErrArmLength
	}
	if s.ArmMass < 0 {
		return ErrArmMass
	}
	if s.ProjectileMass <= 0 {
		return ErrProjectileMass
	}
	if s.LaunchAngle < 10 || s.LaunchAngle > 80 {
		return ErrLaunchAngle
	}
	if s.TargetRange <= 0 {
		return ErrTargetRange
	}
	if s.DragCoeff < 0 {
		return ErrDragCoeff
	}
	return nil
}

// PivotHeight is the height of the arm pivot above the ground plane.
// The pivot sits one arm length up so the release circle never dips
// below ground.
func (s Spec) PivotHeight() float64 { return s.ArmLength }
