package primitive

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// RotateY decorates a child primitive with a rotation about the Y axis.
// Incoming rays are rotated by -θ on the way in; hit points and normals
// are rotated by +θ on the way out. The rotation itself is built from
// mgl64's homogeneous transform matrix rather than hand-rolled sin/cos
// algebra, so the same matrix also produces the rotated AABB corners.
type RotateY struct {
	Child    core.Primitive
	forward  mgl64.Mat4 // rotates by +θ (object -> world)
	backward mgl64.Mat4 // rotates by -θ (world -> object)
	bbox     core.AABB
}

// NewRotateY wraps child, rotated by angle about the Y axis.
func NewRotateY(child core.Primitive, angle core.Angle) *RotateY {
	theta := angle.Radians()
	forward := mgl64.HomogRotate3DY(theta)
	backward := mgl64.HomogRotate3DY(-theta)

	bbox := child.BoundingBox()

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerpEdge(bbox.X, i)
				y := lerpEdge(bbox.Y, j)
				z := lerpEdge(bbox.Z, k)

				rotated := transformPoint(forward, core.NewVec3(x, y, z))
				min = core.NewVec3(minf(min.X, rotated.X), minf(min.Y, rotated.Y), minf(min.Z, rotated.Z))
				max = core.NewVec3(maxf(max.X, rotated.X), maxf(max.Y, rotated.Y), maxf(max.Z, rotated.Z))
			}
		}
	}

	return &RotateY{
		Child:    child,
		forward:  forward,
		backward: backward,
		bbox:     core.NewAABBFromPoints(min, max),
	}
}

func lerpEdge(iv core.Interval, which int) float64 {
	if which == 0 {
		return iv.Min
	}
	return iv.Max
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func transformPoint(m mgl64.Mat4, p core.Vec3) core.Vec3 {
	v := m.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return core.NewVec3(v[0], v[1], v[2])
}

func transformDirection(m mgl64.Mat4, d core.Vec3) core.Vec3 {
	v := m.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return core.NewVec3(v[0], v[1], v[2])
}

// Hit implements core.Primitive.
func (ry *RotateY) Hit(r core.Ray, t core.Interval, rng *core.RNG) (core.HitResult, bool) {
	rotatedOrigin := transformPoint(ry.backward, r.Origin)
	rotatedDirection := transformDirection(ry.backward, r.Direction)
	rotatedRay := core.NewRayAtTime(rotatedOrigin, rotatedDirection, r.Time)

	hit, ok := ry.Child.Hit(rotatedRay, t, rng)
	if !ok {
		return core.HitResult{}, false
	}

	hit.P = transformPoint(ry.forward, hit.P)
	hit.Normal = transformDirection(ry.forward, hit.Normal)
	return hit, true
}

// BoundingBox implements core.Primitive.
func (ry *RotateY) BoundingBox() core.AABB {
	return ry.bbox
}
