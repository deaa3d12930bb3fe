package camera

import (
	"testing"

	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/material"
	"github.com/arlojansen/pathtracer/pkg/primitive"
)

func TestRadiance_ReturnsBackgroundOnMiss(t *testing.T) {
	world := primitive.NewList() // empty: every ray misses
	bg := core.NewVec3(0.3, 0.4, 0.5)
	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := Radiance(r, World{Scene: world}, bg, 10, core.NewRNG(0))
	if got != bg {
		t.Errorf("expected background color on a total miss, got %v", got)
	}
}

func TestRadiance_DepthZeroReturnsBlack(t *testing.T) {
	mat := material.NewDiffuseLight(core.NewVec3(5, 5, 5))
	sphere := primitive.NewSphere(core.NewVec3(0, 0, -5), 1, mat)
	world := primitive.NewListOf(sphere)
	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := Radiance(r, World{Scene: world}, core.Vec3{}, 0, core.NewRNG(0))
	if got != (core.Vec3{}) {
		t.Errorf("expected zero radiance at depth 0, got %v", got)
	}
}

func TestRadiance_DirectLightHitReturnsEmission(t *testing.T) {
	emission := core.NewVec3(5, 5, 5)
	mat := material.NewDiffuseLight(emission)
	sphere := primitive.NewSphere(core.NewVec3(0, 0, -5), 1, mat)
	world := primitive.NewListOf(sphere)
	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := Radiance(r, World{Scene: world}, core.Vec3{}, 5, core.NewRNG(0))
	if got != emission {
		t.Errorf("expected a ray hitting a light head-on to return its emission, got %v", got)
	}
}

func TestRadiance_AbsorbedRayReturnsZero(t *testing.T) {
	// Lights absorb (Scatter returns false); with no other geometry the
	// recursion should stop at emission alone, never going negative or NaN.
	mat := material.NewDiffuseLight(core.NewVec3(0, 0, 0))
	sphere := primitive.NewSphere(core.NewVec3(0, 0, -5), 1, mat)
	world := primitive.NewListOf(sphere)
	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := Radiance(r, World{Scene: world}, core.Vec3{}, 5, core.NewRNG(0))
	if got != (core.Vec3{}) {
		t.Errorf("expected zero radiance from a dark light, got %v", got)
	}
}
