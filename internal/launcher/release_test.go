package launcher

import (
	"math"
	"testing"
)

func TestReleaseOnArmCircle(t *testing.T) {
	specs := []Spec{
		DefaultSpec(),
		{Stiffness: 900, ArmLength: 2.5, ArmMass: 4, ProjectileMass: 1.5, LaunchAngle: 30},
		{Stiffness: 60000, ArmLength: 10, ArmMass: 120, ProjectileMass: 40, LaunchAngle: 75},
		{Stiffness: 150000, ArmLength: 6, ArmMass: 25, ProjectileMass: 10, LaunchAngle: 10},
	}

	for _, s := range specs {
		rel := DeriveRelease(s)

		dx, dy := rel.X, rel.Y-s.PivotHeight()
		dist := math.Hypot(dx, dy)
		if math.Abs(dist-s.ArmLength) > 1e-9 {
			t.Errorf("release point %.4f from pivot, want arm length %.4f", dist, s.ArmLength)
		}

		if rel.Y < s.PivotHeight()-s.ArmLength-1e-9 || rel.Y > s.PivotHeight()+s.ArmLength+1e-9 {
			t.Errorf("release height %.4f outside arm circle about pivot %.4f", rel.Y, s.PivotHeight())
		}
	}
}

func TestReleaseVelocityDirection(t *testing.T) {
	for _, deg := range []float64{10, 30, 45, 60, 80} {
		s := DefaultSpec()
		s.LaunchAngle = deg

		rel := DeriveRelease(s)
		got := math.Atan2(rel.VY, rel.VX) * 180 / math.Pi
		if math.Abs(got-deg) > 1e-9 {
			t.Errorf("velocity direction %.6f°, want %.6f°", got, deg)
		}
	}
}

func TestReleaseSpeedFromEnergyBalance(t *testing.T) {
	s := DefaultSpec()
	rel := DeriveRelease(s)

	l2 := s.ArmLength * s.ArmLength
	inertia := s.ArmMass*l2/3 + s.ProjectileMass*l2
	kinetic := efficiency * 0.5 * s.Stiffness * swingArc * swingArc
	expected := math.Sqrt(2*kinetic/inertia) * s.ArmLength

	if math.Abs(rel.Speed()-expected) > 1e-9 {
		t.Errorf("release speed %.6f, want %.6f", rel.Speed(), expected)
	}
}

func TestReleaseSpeedMonotonicInStiffness(t *testing.T) {
	s := DefaultSpec()
	prev := 0.0
	for k := 100.0; k <= 150000; k *= 2 {
		s.Stiffness = k
		speed := DeriveRelease(s).Speed()
		if speed <= prev {
			t.Fatalf("speed %.4f at stiffness %.0f not above %.4f", speed, k, prev)
		}
		prev = speed
	}
}

func TestDeriveReleaseIsPure(t *testing.T) {
	s := DefaultSpec()
	a, b := DeriveRelease(s), DeriveRelease(s)
	if a != b {
		t.Errorf("identical specs produced different release states: %+v vs %+v", a, b)
	}
}
