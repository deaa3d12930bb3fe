package primitive

import (
	"math"
	"testing"

	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/material"
)

func TestQuad_HitWithinBounds(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	q := NewQuad(core.NewVec3(-1, -1, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)

	center := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	if _, ok := q.Hit(center, core.NewInterval(0.001, math.Inf(1)), nil); !ok {
		t.Error("expected a hit through the quad's center")
	}

	outside := core.NewRay(core.NewVec3(5, 5, -5), core.NewVec3(0, 0, 1))
	if _, ok := q.Hit(outside, core.NewInterval(0.001, math.Inf(1)), nil); ok {
		t.Error("expected a miss outside the quad's parallelogram")
	}
}

func TestQuad_PDFValuePositiveOnHit(t *testing.T) {
	mat := material.NewDiffuseLight(core.NewVec3(1, 1, 1))
	q := NewQuad(core.NewVec3(-1, -1, 5), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)

	origin := core.NewVec3(0, 0, 0)
	dir := core.NewVec3(0, 0, 5)

	density := q.PDFValue(origin, dir)
	if density <= 0 {
		t.Errorf("expected positive density for a direction hitting the quad, got %v", density)
	}

	missDensity := q.PDFValue(origin, core.NewVec3(100, 100, 5))
	if missDensity != 0 {
		t.Errorf("expected zero density for a direction missing the quad, got %v", missDensity)
	}
}

func TestQuad_RandomSamplesWithinArea(t *testing.T) {
	mat := material.NewDiffuseLight(core.NewVec3(1, 1, 1))
	q := NewQuad(core.NewVec3(0, 0, 5), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mat)
	rng := core.NewRNG(3)
	origin := core.NewVec3(0, 0, 0)

	for i := 0; i < 100; i++ {
		dir := q.Random(origin, rng)
		target := origin.Add(dir)
		if target.X < -0.001 || target.X > 2.001 || target.Y < -0.001 || target.Y > 2.001 {
			t.Fatalf("sampled point %v outside the quad's extent", target)
		}
	}
}
