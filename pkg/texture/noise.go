package texture

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// Noise is a marbled procedural texture: 0.5*(1+sin(scale*p.z + 10*turb))
// where turb is 7-octave Perlin turbulence.
type Noise struct {
	noise *perlin
	Scale float64
}

// NewNoise creates a noise texture seeded from rng.
func NewNoise(scale float64, rng *core.RNG) *Noise {
	return &Noise{noise: newPerlin(rng), Scale: scale}
}

// Value implements core.Texture.
func (n *Noise) Value(u, v float64, p core.Vec3) core.Color {
	turb := float64(n.noise.turbulence(p, 7))
	gray := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*turb))
	return core.NewVec3(gray, gray, gray)
}
