package launcher

import "testing"

func TestDefaultSpecValid(t *testing.T) {
	if err := DefaultSpec().Validate(); err != nil {
		t.Fatalf("default spec invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
		want   error
	}{
		{"zero arm length", func(s *Spec) { s.ArmLength = 0 }, ErrArmLength},
		{"negative arm mass", func(s *Spec) { s.ArmMass = -1 }, ErrArmMass},
		{"zero projectile mass", func(s *Spec) { s.ProjectileMass = 0 }, ErrProjectileMass},
		{"angle too low", func(s *Spec) { s.LaunchAngle = 5 }, ErrLaunchAngle},
		{"angle too high", func(s *Spec) { s.LaunchAngle = 85 }, ErrLaunchAngle},
		{"zero target", func(s *Spec) { s.TargetRange = 0 }, ErrTargetRange},
		{"negative drag", func(s *Spec) { s.DragCoeff = -0.1 }, ErrDragCoeff},
	}

	for _, tt := range tests {
		s := DefaultSpec()
		tt.mutate(&s)
		if err := s.Validate(); err != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}
