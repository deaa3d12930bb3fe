package core

import "math"

// minAABBSize is the minimum extent enforced on every axis of every AABB.
// Planar primitives (a quad, a box face) would otherwise produce a
// degenerate slab on their normal axis; padding keeps the slab test in Hit
// numerically well-defined.
const minAABBSize = 1e-4

// AABB is an axis-aligned bounding box expressed as three axis intervals.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB builds an AABB from three axis intervals, padding any axis
// thinner than minAABBSize.
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: padAxis(x), Y: padAxis(y), Z: padAxis(z)}
}

// NewAABBFromPoints builds the smallest padded AABB containing all points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{X: Empty, Y: Empty, Z: Empty}
	}
	minV, maxV := points[0], points[0]
	for _, p := range points[1:] {
		minV = Vec3{min(minV.X, p.X), min(minV.Y, p.Y), min(minV.Z, p.Z)}
		maxV = Vec3{max(maxV.X, p.X), max(maxV.Y, p.Y), max(maxV.Z, p.Z)}
	}
	return NewAABB(
		NewInterval(minV.X, maxV.X),
		NewInterval(minV.Y, maxV.Y),
		NewInterval(minV.Z, maxV.Z),
	)
}

func padAxis(iv Interval) Interval {
	if iv.Size() >= minAABBSize {
		return iv
	}
	padded := iv.Expand(minAABBSize)
	// Rounding in Expand can leave the padded size a hair under
	// minAABBSize; nudge Max up until the invariant holds.
	for padded.Size() < minAABBSize && !math.IsInf(padded.Max, 0) {
		padded.Max = math.Nextafter(padded.Max, math.Inf(1))
	}
	return padded
}

// Axis returns the interval for axis 0=X, 1=Y, 2=Z.
func (b AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// LongestAxis returns the index (0/1/2) of the box's longest axis.
func (b AABB) LongestAxis() int {
	if b.X.Size() > b.Y.Size() {
		if b.X.Size() > b.Z.Size() {
			return 0
		}
		return 2
	}
	if b.Y.Size() > b.Z.Size() {
		return 1
	}
	return 2
}

// Union returns the smallest AABB containing both boxes.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		X: UnionInterval(b.X, o.X),
		Y: UnionInterval(b.Y, o.Y),
		Z: UnionInterval(b.Z, o.Z),
	}
}

// Translate returns the box shifted by offset.
func (b AABB) Translate(offset Vec3) AABB {
	return AABB{
		X: b.X.Translate(offset.X),
		Y: b.Y.Translate(offset.Y),
		Z: b.Z.Translate(offset.Z),
	}
}

// Hit tests ray-box intersection via the slab method, tightening [tMin,
// tMax] against every axis in turn.
func (b AABB) Hit(r Ray, t Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ax := b.Axis(axis)
		origin := r.Origin.At(axis)
		dir := r.Direction.At(axis)

		if dir == 0 {
			if origin < ax.Min || origin > ax.Max {
				return false
			}
			continue
		}

		invD := 1.0 / dir
		t0 := (ax.Min - origin) * invD
		t1 := (ax.Max - origin) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > t.Min {
			t.Min = t0
		}
		if t1 < t.Max {
			t.Max = t1
		}
		if t.Max <= t.Min {
			return false
		}
	}
	return true
}
