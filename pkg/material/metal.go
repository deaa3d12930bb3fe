package material

import "github.com/arlojansen/pathtracer/pkg/core"

// Metal is a specular reflector perturbed by a fuzz factor.
type Metal struct {
	Albedo core.Color
	Fuzz   float64
}

// NewMetal creates a Metal material; fuzz is clamped to [0,1].
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements core.Material: a deterministic reflected ray
// perturbed by Fuzz*random_unit_vector, skipping PDF-based sampling.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitResult, rng *core.RNG) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	reflected = reflected.Add(rng.UnitVector().Multiply(m.Fuzz)).Normalize()

	scattered := core.NewRayAtTime(hit.P, reflected, rayIn.Time)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Attenuation: m.Albedo,
		SkipPDF:     true,
		SkipPDFRay:  scattered,
	}, true
}

// ScatterPDF implements core.Material. Metal is specular: the integrator
// never calls this because Scatter always sets SkipPDF.
func (m *Metal) ScatterPDF(rayIn core.Ray, hit core.HitResult, scattered core.Ray) float64 {
	return 0
}

// Emitted implements core.Material: metal doesn't emit.
func (m *Metal) Emitted(rayIn core.Ray, hit core.HitResult, u, v float64, p core.Vec3) core.Color {
	return core.NewVec3(0, 0, 0)
}
