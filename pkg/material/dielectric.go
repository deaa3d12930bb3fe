package material

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// Dielectric is a transparent refractive material (glass, water). It never
// absorbs color and always reports SkipPDF since reflection/refraction is
// a delta-function choice, not importance-sampled.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric creates a Dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter implements core.Material.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitResult, rng *core.RNG) (core.ScatterResult, bool) {
	var ri float64
	if hit.FrontFace {
		ri = 1.0 / d.RefractionIndex
	} else {
		ri = d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ri*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, ri) > rng.Float() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, ri)
	}

	scattered := core.NewRayAtTime(hit.P, direction, rayIn.Time)
	return core.ScatterResult{
		Attenuation: core.NewVec3(1, 1, 1),
		SkipPDF:     true,
		SkipPDFRay:  scattered,
	}, true
}

// ScatterPDF implements core.Material; dielectrics are specular.
func (d *Dielectric) ScatterPDF(rayIn core.Ray, hit core.HitResult, scattered core.Ray) float64 {
	return 0
}

// Emitted implements core.Material: glass doesn't emit.
func (d *Dielectric) Emitted(rayIn core.Ray, hit core.HitResult, u, v float64, p core.Vec3) core.Color {
	return core.NewVec3(0, 0, 0)
}

// reflectance computes Schlick's approximation to the Fresnel
// reflectance: R0 + (1-R0)*(1-cosθ)^5, R0 = ((1-η)/(1+η))².
func reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
