package texture

import (
	"testing"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// TestImage_TopLeftUV checks that (u=0,v=1) maps to the source image's
// top-left pixel: v is flipped
// internally so that image-space "down" (row 0 = top) matches u/v's
// "up is v=1" convention.
func TestImage_TopLeftUV(t *testing.T) {
	// 2x2 image: row 0 (top) is red/green, row 1 (bottom) is blue/white.
	pixels := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	img := NewImage(2, 2, pixels)

	got := img.Value(0, 1, core.NewVec3(0, 0, 0))
	if got.X != 1 || got.Y != 0 || got.Z != 0 {
		t.Errorf("expected top-left red pixel, got %v", got)
	}
}

func TestImage_DecodeFailureIsCyan(t *testing.T) {
	img := NewImage(0, 0, nil)
	got := img.Value(0.5, 0.5, core.NewVec3(0, 0, 0))
	if got != cyan {
		t.Errorf("expected cyan fallback for a failed decode, got %v", got)
	}
}

func TestImage_UClampsIntoRange(t *testing.T) {
	pixels := []byte{10, 20, 30, 255, 40, 50, 60, 255}
	img := NewImage(2, 1, pixels)

	overU := img.Value(5.0, 0, core.NewVec3(0, 0, 0))
	clampedU := img.Value(1.0, 0, core.NewVec3(0, 0, 0))
	if overU != clampedU {
		t.Errorf("expected out-of-range u to clamp, got %v vs %v", overU, clampedU)
	}
}
