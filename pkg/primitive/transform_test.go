package primitive

import (
	"math"
	"testing"

	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/material"
)

func TestTranslate_HitPointShiftsByOffset(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, mat)
	offset := core.NewVec3(5, 0, 0)
	translated := NewTranslate(sphere, offset)

	r := core.NewRay(core.NewVec3(5, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := translated.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected a hit on the translated sphere")
	}

	if math.Abs(hit.P.Z-(-1)) > 1e-9 {
		t.Errorf("expected hit near z=-1 (translated surface), got %v", hit.P)
	}
}

func TestRotateY_RotatedBoxHitAndWidenedBounds(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), mat)
	rotated := NewRotateY(box, core.Degrees(45))

	r := core.NewRay(core.NewVec3(0.5, 0.5, -10), core.NewVec3(0, 0, 1))
	_, ok := rotated.Hit(r, core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		t.Fatal("expected the 45-degree-rotated box to still be hit through its center")
	}

	bbox := rotated.BoundingBox()
	diag := bbox.X.Size()
	// A 45-degree rotation of a unit cube about Y should widen the box's
	// footprint along X/Z from 1 to about sqrt(2).
	if diag < 1.3 || diag > 1.5 {
		t.Errorf("expected rotated AABB X-extent near sqrt(2)~1.41, got %v", diag)
	}
}
