package material

import (
	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/texture"
)

// DiffuseLight is an emissive material: it never scatters, and emits its
// texture's color on the front face only (the back face is dark).
type DiffuseLight struct {
	Emission core.Texture
}

// NewDiffuseLight creates a DiffuseLight with a solid emission color.
func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return &DiffuseLight{Emission: texture.NewSolid(emission)}
}

// NewDiffuseLightTexture creates a DiffuseLight with a textured emission.
func NewDiffuseLightTexture(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements core.Material: lights absorb, they don't scatter.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitResult, rng *core.RNG) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// ScatterPDF implements core.Material.
func (d *DiffuseLight) ScatterPDF(rayIn core.Ray, hit core.HitResult, scattered core.Ray) float64 {
	return 0
}

// Emitted implements core.Material: zero on the back face.
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit core.HitResult, u, v float64, p core.Vec3) core.Color {
	if !hit.FrontFace {
		return core.NewVec3(0, 0, 0)
	}
	return d.Emission.Value(u, v, p)
}
