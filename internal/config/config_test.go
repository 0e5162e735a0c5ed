package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/torsim/internal/launcher"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ToSpec() != launcher.DefaultSpec() {
		t.Errorf("default config should mirror the default spec, got %+v", cfg)
	}
	if err := cfg.ToSpec().Validate(); err != nil {
		t.Errorf("default config produced invalid spec: %v", err)
	}
}

func TestSpecRoundTrip(t *testing.T) {
	spec := launcher.DefaultSpec()
	spec.Stiffness = 8200
	spec.WindSpeed = -12.5

	if got := FromSpec(spec).ToSpec(); got != spec {
		t.Errorf("spec round trip mismatch: %+v vs %+v", got, spec)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("siege")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.ArmLength != 10 {
		t.Errorf("expected arm length 10, got %f", cfg.ArmLength)
	}
	if err := cfg.ToSpec().Validate(); err != nil {
		t.Errorf("preset produced invalid spec: %v", err)
	}

	// Presets hand out copies; mutating one must not leak back.
	cfg.ArmLength = 99
	if again := GetPreset("siege"); again.ArmLength != 10 {
		t.Error("preset mutation leaked into the registry")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 3 {
		t.Errorf("expected 3 presets, got %d", len(names))
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launcher.yaml")

	cfg := DefaultConfig()
	cfg.Stiffness = 7777
	cfg.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}
