package camera

import (
	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/pdf"
)

// World is the subset of the scene the integrator needs: the (optimized)
// primitive tree to intersect, and the light subset used for next-event
// estimation.
type World struct {
	Scene  core.Primitive
	Lights core.Light // nil if the scene has no importance-sampled lights
}

const hitEpsilon = 0.001

// Radiance recursively estimates the incoming light along r, following the
// classic recursion: intersect, add emission, scatter, and either follow a
// specular ray unweighted or importance-sample a 50/50 mixture of the
// light PDF and the material's own scattering PDF, weighting the
// contribution by scatter_pdf(direction)/mixture_pdf.Value(direction). The
// recursion bottoms out at depth 0 or when the material absorbs the ray.
func Radiance(r core.Ray, w World, background core.Color, depth int, rng *core.RNG) core.Color {
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	hit, isHit := w.Scene.Hit(r, core.NewInterval(hitEpsilon, core.Universe.Max), rng)
	if !isHit {
		return background
	}

	emitted := hit.Mat.Emitted(r, hit, hit.U, hit.V, hit.P)

	scatter, didScatter := hit.Mat.Scatter(r, hit, rng)
	if !didScatter {
		return emitted
	}

	if scatter.SkipPDF {
		attenuated := scatter.Attenuation.MultiplyVec(Radiance(scatter.SkipPDFRay, w, background, depth-1, rng))
		return emitted.Add(attenuated)
	}

	lightPDF := pdf.NewPrimitive(w.Lights, hit.P)
	mixture := pdf.NewMixture(lightPDF, scatter.PDF)

	scattered := core.NewRayAtTime(hit.P, mixture.Generate(rng), r.Time)
	pdfValue := mixture.Value(scattered.Direction)
	if pdfValue <= 0 {
		return emitted
	}

	scatterPDF := hit.Mat.ScatterPDF(r, hit, scattered)
	incoming := Radiance(scattered, w, background, depth-1, rng)

	sampled := scatter.Attenuation.MultiplyVec(incoming).Multiply(scatterPDF / pdfValue)
	return emitted.Add(sampled)
}
