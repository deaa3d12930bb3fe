package primitive

import "github.com/arlojansen/pathtracer/pkg/core"

// List is an ordered aggregate of primitives with a cached union AABB.
// It implements linear-scan Hit and, via Optimize, can be replaced by a
// single BVH root built over the same list.
type List struct {
	Objects []core.Primitive
	bbox    core.AABB
	hasBbox bool
}

// NewList creates an empty list aggregate.
func NewList() *List {
	return &List{}
}

// NewListOf creates a list aggregate from the given primitives.
func NewListOf(objects ...core.Primitive) *List {
	l := NewList()
	for _, o := range objects {
		l.Add(o)
	}
	return l
}

// Add appends a primitive and extends the cached bounding box.
func (l *List) Add(p core.Primitive) {
	l.Objects = append(l.Objects, p)
	if !l.hasBbox {
		l.bbox = p.BoundingBox()
		l.hasBbox = true
	} else {
		l.bbox = l.bbox.Union(p.BoundingBox())
	}
}

// Hit implements core.Primitive via linear scan: every object is tested
// against a progressively tightened [t.Min, closest].
func (l *List) Hit(r core.Ray, t core.Interval, rng *core.RNG) (core.HitResult, bool) {
	var best core.HitResult
	hitAnything := false
	closest := t.Max

	for _, obj := range l.Objects {
		if hit, ok := obj.Hit(r, core.NewInterval(t.Min, closest), rng); ok {
			hitAnything = true
			closest = hit.T
			best = hit
		}
	}
	return best, hitAnything
}

// BoundingBox implements core.Primitive.
func (l *List) BoundingBox() core.AABB {
	return l.bbox
}

// Optimize replaces the list's objects with a single BVH root built over
// them, so Hit and BoundingBox go through the BVH. The BVH node is not a
// core.Light, so an optimized list no longer answers PDFValue/Random per
// member and is not usable as a light set.
func (l *List) Optimize() {
	if len(l.Objects) == 0 {
		return
	}
	bvh := NewBVH(l.Objects)
	l.Objects = []core.Primitive{bvh}
	l.bbox = bvh.BoundingBox()
}

// PDFValue implements core.Light by averaging each member's PDFValue, the
// standard way to treat a set of lights as one combined light for next
// event estimation.
func (l *List) PDFValue(origin, dir core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	weight := 1.0 / float64(len(l.Objects))
	var sum float64
	for _, obj := range l.Objects {
		if light, ok := obj.(core.Light); ok {
			sum += weight * light.PDFValue(origin, dir)
		}
	}
	return sum
}

// Random implements core.Light by picking a uniformly random member and
// delegating to it.
func (l *List) Random(origin core.Vec3, rng *core.RNG) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}
	idx := rng.Int(0, len(l.Objects)-1)
	if light, ok := l.Objects[idx].(core.Light); ok {
		return light.Random(origin, rng)
	}
	return core.NewVec3(1, 0, 0)
}
