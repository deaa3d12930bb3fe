// Package material implements the scatter/emission/PDF triple for each
// surface shader: Lambertian, Metal, Dielectric, Isotropic, DiffuseLight,
// and the debug Normals material.
package material

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/pdf"
	"github.com/arlojansen/pathtracer/pkg/texture"
)

// Lambertian is a perfectly diffuse material: it always scatters, with a
// cosine-weighted PDF about the hit normal.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a Lambertian material with a solid albedo.
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolid(albedo)}
}

// NewLambertianTexture creates a Lambertian material with a textured albedo.
func NewLambertianTexture(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements core.Material.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitResult, rng *core.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.P),
		PDF:         pdf.NewCosine(hit.Normal),
	}, true
}

// ScatterPDF implements core.Material: max(0,cosθ)/π.
func (l *Lambertian) ScatterPDF(rayIn core.Ray, hit core.HitResult, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	return math.Max(0, cosine) / math.Pi
}

// Emitted implements core.Material: Lambertian surfaces don't emit.
func (l *Lambertian) Emitted(rayIn core.Ray, hit core.HitResult, u, v float64, p core.Vec3) core.Color {
	return core.NewVec3(0, 0, 0)
}
