package pdf

import "github.com/arlojansen/pathtracer/pkg/core"

// Primitive delegates to a core.Light's PDFValue/Random, letting any light
// primitive (sphere, quad, or an aggregate of them) act as a PDF sampled
// from a fixed world-space origin.
type Primitive struct {
	light  core.Light
	origin core.Vec3
}

// NewPrimitive builds a PDF over light sampled from origin. A nil light
// (no important emitters in the scene) is valid: it always reports zero
// density and samples the fixed direction (1,0,0), so a MixturePDF's
// density then comes from its other component alone while half of its
// samples still take that fixed direction.
func NewPrimitive(light core.Light, origin core.Vec3) *Primitive {
	return &Primitive{light: light, origin: origin}
}

// Value implements core.PDF.
func (p *Primitive) Value(dir core.Vec3) float64 {
	if p.light == nil {
		return 0
	}
	return p.light.PDFValue(p.origin, dir)
}

// Generate implements core.PDF.
func (p *Primitive) Generate(rng *core.RNG) core.Vec3 {
	if p.light == nil {
		return core.NewVec3(1, 0, 0)
	}
	return p.light.Random(p.origin, rng)
}
