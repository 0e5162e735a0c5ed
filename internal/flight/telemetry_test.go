package flight

import (
	"testing"

	"github.com/san-kum/torsim/internal/launcher"
)

func TestSummarize(t *testing.T) {
	spec := launcher.DefaultSpec()
	rel := launcher.DeriveRelease(spec)
	path := Path(rel, spec)

	tel := Summarize(path)

	if tel.Apex < rel.Y {
		t.Errorf("apex %.2f below release height %.2f", tel.Apex, rel.Y)
	}
	if tel.FlightTime <= 0 {
		t.Errorf("flight time %.4f not positive", tel.FlightTime)
	}
	if tel.ImpactSpeed <= 0 {
		t.Errorf("impact speed %.4f not positive", tel.ImpactSpeed)
	}
	if tel.Range != path[len(path)-1].X {
		t.Errorf("telemetry range %.4f disagrees with path endpoint", tel.Range)
	}
	if tel.Steps != len(path)-1 {
		t.Errorf("steps %d, want %d", tel.Steps, len(path)-1)
	}
}

func TestSummarizeEmptyPath(t *testing.T) {
	if tel := Summarize(nil); tel != (Telemetry{}) {
		t.Errorf("empty path should summarize to zero value, got %+v", tel)
	}
}
