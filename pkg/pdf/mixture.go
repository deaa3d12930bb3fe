package pdf

import "github.com/arlojansen/pathtracer/pkg/core"

// Mixture is an equal-weight (50/50) combination of two PDFs, the
// mechanism behind the integrator's multiple importance sampling between
// light-sampling and material (BRDF) sampling. The weights are
// deliberately hard-coded; lift them to configuration only if variance
// analysis calls for unequal weighting.
type Mixture struct {
	P1, P2 core.PDF
}

// NewMixture builds a 50/50 mixture of p1 and p2.
func NewMixture(p1, p2 core.PDF) *Mixture {
	return &Mixture{P1: p1, P2: p2}
}

// Value implements core.PDF.
func (m *Mixture) Value(dir core.Vec3) float64 {
	return 0.5*m.P1.Value(dir) + 0.5*m.P2.Value(dir)
}

// Generate implements core.PDF: flips a fair coin and draws from the
// chosen component.
func (m *Mixture) Generate(rng *core.RNG) core.Vec3 {
	if rng.Float() < 0.5 {
		return m.P1.Generate(rng)
	}
	return m.P2.Generate(rng)
}
