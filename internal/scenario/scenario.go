// Package scenario produces randomized engagements for the solver to
// chase. Generation lives outside the kernel; it only has to emit
// values inside the kernel's accepted domain.
package scenario

import (
	"math/rand"

	"github.com/san-kum/torsim/internal/launcher"
)

const (
	targetMin = 50.0
	targetMax = 400.0
	windMin   = -20.0
	windMax   = 20.0
)

type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a copy of base with a fresh target range and wind.
// Structural parameters are left alone; the engagement changes, the
// machine does not.
func (g *Generator) Next(base launcher.Spec) launcher.Spec {
	s := base
	s.TargetRange = targetMin + g.rng.Float64()*(targetMax-targetMin)
	s.WindSpeed = windMin + g.rng.Float64()*(windMax-windMin)
	return s
}
