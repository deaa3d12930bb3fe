package primitive

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// ConstantMedium is probabilistic volumetric "fog" of uniform density
// bounded by any primitive. It always scatters isotropically; the
// recorded normal/front-face at a medium hit are arbitrary since isotropic
// scattering is view-independent.
type ConstantMedium struct {
	Boundary   core.Primitive
	NegInvDens float64
	Phase      core.Material
}

// NewConstantMedium creates a medium of the given density bounded by
// boundary, with the given phase-function material (typically Isotropic).
func NewConstantMedium(boundary core.Primitive, density float64, phase core.Material) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, NegInvDens: -1.0 / density, Phase: phase}
}

// Hit implements core.Primitive. Given boundary hits t1<t2 along the ray,
// it samples a world-space free path hitDistance = -log(rand())/density
// and records a hit iff hitDistance does not exceed the world-space
// distance inside the boundary, (t2-t1)*|direction|; the hit's t is
// t1 + hitDistance/|direction|.
func (m *ConstantMedium) Hit(r core.Ray, t core.Interval, rng *core.RNG) (core.HitResult, bool) {
	hit1, ok := m.Boundary.Hit(r, core.Universe, rng)
	if !ok {
		return core.HitResult{}, false
	}
	hit2, ok := m.Boundary.Hit(r, core.NewInterval(hit1.T+0.0001, math.Inf(1)), rng)
	if !ok {
		return core.HitResult{}, false
	}

	if hit1.T < t.Min {
		hit1.T = t.Min
	}
	if hit2.T > t.Max {
		hit2.T = t.Max
	}
	if hit1.T >= hit2.T {
		return core.HitResult{}, false
	}
	if hit1.T < 0 {
		hit1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (hit2.T - hit1.T) * rayLength
	hitDistance := m.NegInvDens * math.Log(rng.Float())

	if hitDistance > distanceInsideBoundary {
		return core.HitResult{}, false
	}

	var hit core.HitResult
	hit.T = hit1.T + hitDistance/rayLength
	hit.P = r.At(hit.T)
	hit.Normal = core.NewVec3(1, 0, 0) // arbitrary: isotropic scattering is view-independent
	hit.FrontFace = true
	hit.Mat = m.Phase
	return hit, true
}

// BoundingBox implements core.Primitive: mirrors the boundary's box.
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
