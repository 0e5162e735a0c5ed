package config

var presets = map[string]*Config{
	"field": {
		Stiffness: 4000, ArmLength: 6, ArmMass: 25, ProjectileMass: 10,
		LaunchAngle: 45, TargetRange: 150, WindSpeed: 0, DragCoeff: 0.05,
	},
	"siege": {
		Stiffness: 60000, ArmLength: 10, ArmMass: 120, ProjectileMass: 40,
		LaunchAngle: 40, TargetRange: 350, WindSpeed: 0, DragCoeff: 0.08,
	},
	"scorpion": {
		Stiffness: 900, ArmLength: 2.5, ArmMass: 4, ProjectileMass: 1.5,
		LaunchAngle: 30, TargetRange: 90, WindSpeed: 0, DragCoeff: 0.02,
	},
}

// GetPreset returns a copy of a named launcher preset, or nil when
// the name is unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
