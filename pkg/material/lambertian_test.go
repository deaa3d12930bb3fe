package material

import (
	"math"
	"testing"

	"github.com/arlojansen/pathtracer/pkg/core"
)

func TestLambertian_AlwaysScatters(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	rng := core.NewRNG(42)

	hit := core.HitResult{P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scatter, didScatter := lambertian.Scatter(ray, hit, rng)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}
	if scatter.Attenuation != albedo {
		t.Errorf("expected attenuation to equal albedo, got %v", scatter.Attenuation)
	}
	if scatter.SkipPDF {
		t.Error("Lambertian is not specular: SkipPDF should be false")
	}
	if scatter.PDF == nil {
		t.Fatal("expected a non-nil importance-sampling PDF")
	}
}

func TestLambertian_ScatterPDFMatchesCosineFormula(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := core.HitResult{Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	scattered := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.3, 0.2, 1))
	got := lambertian.ScatterPDF(ray, hit, scattered)

	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	want := math.Max(0, cosine) / math.Pi
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ScatterPDF: got %v, want %v", got, want)
	}
}

func TestLambertian_DoesNotEmit(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	emitted := lambertian.Emitted(core.Ray{}, core.HitResult{}, 0, 0, core.Vec3{})
	if emitted != (core.Vec3{}) {
		t.Errorf("expected zero emission, got %v", emitted)
	}
}
