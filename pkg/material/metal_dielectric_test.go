package material

import (
	"math"
	"testing"

	"github.com/arlojansen/pathtracer/pkg/core"
)

func TestMetal_ZeroFuzzReflectsExactly(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	rng := core.NewRNG(1)

	normal := core.NewVec3(0, 1, 0)
	hit := core.HitResult{Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())

	scatter, ok := metal.Scatter(ray, hit, rng)
	if !ok {
		t.Fatal("expected metal to scatter when reflection points away from the surface")
	}
	if !scatter.SkipPDF {
		t.Error("Metal is specular: SkipPDF should be true")
	}

	want := ray.Direction.Reflect(normal)
	if scatter.SkipPDFRay.Direction.Subtract(want).Length() > 1e-9 {
		t.Errorf("expected exact mirror reflection, got %v want %v", scatter.SkipPDFRay.Direction, want)
	}
}

func TestMetal_FuzzClampedToUnitRange(t *testing.T) {
	tooHigh := NewMetal(core.NewVec3(1, 1, 1), 5.0)
	if tooHigh.Fuzz != 1.0 {
		t.Errorf("expected Fuzz clamped to 1, got %v", tooHigh.Fuzz)
	}
	negative := NewMetal(core.NewVec3(1, 1, 1), -5.0)
	if negative.Fuzz != 0.0 {
		t.Errorf("expected Fuzz clamped to 0, got %v", negative.Fuzz)
	}
}

func TestDielectric_SchlickReflectanceAtNormalIncidence(t *testing.T) {
	r0 := reflectance(1.0, 1.5)
	want := math.Pow((1-1.5)/(1+1.5), 2)
	if math.Abs(r0-want) > 1e-9 {
		t.Errorf("reflectance at normal incidence: got %v, want %v", r0, want)
	}
}

func TestDielectric_AlwaysSkipsPDF(t *testing.T) {
	glass := NewDielectric(1.5)
	rng := core.NewRNG(2)
	hit := core.HitResult{Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	scatter, ok := glass.Scatter(ray, hit, rng)
	if !ok {
		t.Fatal("expected dielectric to always scatter")
	}
	if !scatter.SkipPDF {
		t.Error("Dielectric is specular: SkipPDF should be true")
	}
	if scatter.Attenuation != (core.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("expected colorless attenuation, got %v", scatter.Attenuation)
	}
}
