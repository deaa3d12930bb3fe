package material

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/pdf"
)

// Normals is a debug material that colors a surface by its normal
// direction. Its attenuation is the remapped normal 0.5*(normal+1) rather
// than a surface albedo; otherwise it scatters exactly like Lambertian
// (cosine PDF, SkipPDF=false, the same cosine ScatterPDF). It exists for
// visual debugging of normals, not for reference renders.
type Normals struct{}

// Scatter implements core.Material.
func (Normals) Scatter(rayIn core.Ray, hit core.HitResult, rng *core.RNG) (core.ScatterResult, bool) {
	attenuation := hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
	return core.ScatterResult{
		Attenuation: attenuation,
		PDF:         pdf.NewCosine(hit.Normal),
	}, true
}

// ScatterPDF implements core.Material, matching the cosine PDF used above.
func (Normals) ScatterPDF(rayIn core.Ray, hit core.HitResult, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	return math.Max(0, cosine) / math.Pi
}

// Emitted implements core.Material.
func (Normals) Emitted(rayIn core.Ray, hit core.HitResult, u, v float64, p core.Vec3) core.Color {
	return core.NewVec3(0, 0, 0)
}
