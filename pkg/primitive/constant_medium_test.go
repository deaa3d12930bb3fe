package primitive

import (
	"math"
	"testing"

	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/material"
)

// TestConstantMedium_DensityScalesHitFraction estimates, by sampling many
// rays through a unit-thickness medium, the fraction that scatter inside
// it before exiting. Raising density from 0.1 to 5.0 should noticeably raise that fraction
// (not an exact halving of anything measured here directly, but a monotone,
// substantial increase).
func TestConstantMedium_DensityScalesHitFraction(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	boundary := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), mat)
	phase := material.NewIsotropic(core.NewVec3(1, 1, 1))

	fractionScattered := func(density float64) float64 {
		medium := NewConstantMedium(boundary, density, phase)
		rng := core.NewRNG(5)
		const trials = 2000
		hits := 0
		for i := 0; i < trials; i++ {
			r := core.NewRay(core.NewVec3(0.5, 0.5, -5), core.NewVec3(0, 0, 1))
			if _, ok := medium.Hit(r, core.NewInterval(0.001, math.Inf(1)), rng); ok {
				hits++
			}
		}
		return float64(hits) / trials
	}

	low := fractionScattered(0.1)
	high := fractionScattered(5.0)

	if high <= low {
		t.Errorf("expected higher density to scatter more rays: low=%v high=%v", low, high)
	}
}

func TestConstantMedium_MissesOutsideBoundary(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(1, 1, 1))
	boundary := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), mat)
	phase := material.NewIsotropic(core.NewVec3(1, 1, 1))
	medium := NewConstantMedium(boundary, 1.0, phase)

	rng := core.NewRNG(0)
	r := core.NewRay(core.NewVec3(10, 10, -5), core.NewVec3(0, 0, 1))
	if _, ok := medium.Hit(r, core.NewInterval(0.001, math.Inf(1)), rng); ok {
		t.Error("expected a ray that misses the boundary entirely to miss the medium")
	}
}
