package primitive

import (
	"math"
	"testing"

	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/material"
)

func TestSphere_HitEpsilon(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	center := core.NewVec3(0, 0, -5)
	radius := 2.0
	s := NewSphere(center, radius, mat)

	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit")
	}

	dist := hit.P.Subtract(center).Length()
	if math.Abs(dist-radius) > 1e-3*radius {
		t.Errorf("hit point not on sphere surface: |dist-radius|=%v", math.Abs(dist-radius))
	}
}

func TestSphere_FrontFaceInvariant(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s := NewSphere(core.NewVec3(0, 0, -5), 1, mat)

	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := s.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit")
	}

	if r.Direction.Dot(hit.Normal) >= 0 {
		t.Errorf("expected dot(direction, normal) < 0, got %v", r.Direction.Dot(hit.Normal))
	}
	if !hit.FrontFace {
		t.Error("expected front-facing hit from outside the sphere")
	}

	insideRay := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1))
	hit2, ok2 := s.Hit(insideRay, core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok2 {
		t.Fatal("expected a hit from inside the sphere")
	}
	if hit2.FrontFace {
		t.Error("expected a ray originating inside the sphere to report a back-face hit")
	}
}

func TestSphere_BoundingBoxCoversMovingCenters(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0.5, mat)

	box := s.BoundingBox()
	if box.Y.Min > -0.5 || box.Y.Max < 2.5 {
		t.Errorf("expected swept bounding box to cover both endpoints, got Y=%v", box.Y)
	}
}
