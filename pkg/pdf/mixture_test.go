package pdf

import (
	"testing"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// TestMixture_ValueIsAverageOfComponents checks the closed-form density
// (a straight 50/50 average), leaving the sampling distribution's
// convergence to TestMixture_GenerateConverges below.
func TestMixture_ValueIsAverageOfComponents(t *testing.T) {
	n := core.NewVec3(0, 0, 1)
	cosinePDF := NewCosine(n)
	uniformPDF := Sphere{}
	mix := NewMixture(cosinePDF, uniformPDF)

	dir := core.NewVec3(0.1, 0.1, 1).Normalize()
	want := 0.5*cosinePDF.Value(dir) + 0.5*uniformPDF.Value(dir)
	if got := mix.Value(dir); got != want {
		t.Errorf("Value: got %v, want %v", got, want)
	}
}

// TestMixture_GenerateConverges counts the fraction of samples drawn from
// the mixture that land in the upper hemisphere about n (a coarse 2-bin
// partition of the sphere) and compares it with the fraction predicted by
// the 50/50 weights — a cheap stand-in for a full χ² goodness-of-fit test.
func TestMixture_GenerateConverges(t *testing.T) {
	rng := core.NewRNG(3)
	n := core.NewVec3(0, 0, 1)
	mix := NewMixture(NewCosine(n), Sphere{})

	const samples = 200000
	var upperHemisphere int
	for i := 0; i < samples; i++ {
		dir := mix.Generate(rng)
		if dir.Dot(n) > 0 {
			upperHemisphere++
		}
	}

	// The cosine half always samples into the upper hemisphere; the
	// uniform half splits 50/50. So P(upper) should be ~0.5*1 + 0.5*0.5 = 0.75.
	observed := float64(upperHemisphere) / samples
	if observed < 0.74 || observed > 0.76 {
		t.Errorf("expected ~0.75 of samples in the upper hemisphere, got %v", observed)
	}
}
