package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/torsim/internal/launcher"
)

type Config struct {
	Stiffness      float64 `yaml:"stiffness"`
	ArmLength      float64 `yaml:"arm_length"`
	ArmMass        float64 `yaml:"arm_mass"`
	ProjectileMass float64 `yaml:"projectile_mass"`
	LaunchAngle    float64 `yaml:"launch_angle"`
	TargetRange    float64 `yaml:"target_range"`
	WindSpeed      float64 `yaml:"wind_speed"`
	DragCoeff      float64 `yaml:"drag_coeff"`
	Seed           int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return FromSpec(launcher.DefaultSpec())
}

func FromSpec(s launcher.Spec) *Config {
	return &Config{
		Stiffness:      s.Stiffness,
		ArmLength:      s.ArmLength,
		ArmMass:        s.ArmMass,
		ProjectileMass: s.ProjectileMass,
		LaunchAngle:    s.LaunchAngle,
		TargetRange:    s.TargetRange,
		WindSpeed:      s.WindSpeed,
		DragCoeff:      s.DragCoeff,
	}
}

func (c *Config) ToSpec() launcher.Spec {
	return launcher.Spec{
		Stiffness:      c.Stiffness,
		ArmLength:      c.ArmLength,
		ArmMass:        c.ArmMass,
		ProjectileMass: c.ProjectileMass,
		LaunchAngle:    c.LaunchAngle,
		TargetRange:    c.TargetRange,
		WindSpeed:      c.WindSpeed,
		DragCoeff:      c.DragCoeff,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
