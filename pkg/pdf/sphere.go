// Package pdf implements the probability density functions used for
// importance-sampled next-event estimation: a uniform-sphere PDF, a
// cosine-weighted hemisphere PDF, a proxy PDF over a light primitive, and
// a 50/50 mixture of two PDFs.
package pdf

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// Sphere is the uniform PDF over the unit sphere: density 1/4π.
type Sphere struct{}

// Value implements core.PDF.
func (Sphere) Value(dir core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate implements core.PDF.
func (Sphere) Generate(rng *core.RNG) core.Vec3 {
	return rng.UnitVector()
}
