package material

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/pdf"
	"github.com/arlojansen/pathtracer/pkg/texture"
)

// Isotropic scatters uniformly in all directions; it backs ConstantMedium
// fog, where the hit normal is arbitrary and view-independent.
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an Isotropic material with a solid albedo.
func NewIsotropic(albedo core.Color) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolid(albedo)}
}

// NewIsotropicTexture creates an Isotropic material with a textured albedo.
func NewIsotropicTexture(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements core.Material.
func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitResult, rng *core.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.P),
		PDF:         pdf.Sphere{},
	}, true
}

// ScatterPDF implements core.Material: uniform density 1/4π.
func (i *Isotropic) ScatterPDF(rayIn core.Ray, hit core.HitResult, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Emitted implements core.Material: the medium doesn't emit.
func (i *Isotropic) Emitted(rayIn core.Ray, hit core.HitResult, u, v float64, p core.Vec3) core.Color {
	return core.NewVec3(0, 0, 0)
}
