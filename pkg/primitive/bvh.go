package primitive

import "github.com/arlojansen/pathtracer/pkg/core"

// BVH is a binary bounding volume hierarchy built once over an immutable
// set of primitives, then shared read-only across every render worker.
type BVH struct {
	bbox  core.AABB
	left  core.Primitive
	right core.Primitive
}

// NewBVH recursively splits shapes on the longest axis of their union
// bounding box, sorting by each primitive's AABB minimum on that axis and
// dividing at the midpoint. A single primitive is stored as both children;
// two are stored directly; more recurse on each half.
func NewBVH(shapes []core.Primitive) *BVH {
	objects := make([]core.Primitive, len(shapes))
	copy(objects, shapes)

	node := &BVH{}
	node.bbox = objects[0].BoundingBox()
	for _, o := range objects[1:] {
		node.bbox = node.bbox.Union(o.BoundingBox())
	}

	switch len(objects) {
	case 1:
		node.left = objects[0]
		node.right = objects[0]
	case 2:
		node.left = objects[0]
		node.right = objects[1]
	default:
		axis := node.bbox.LongestAxis()
		sortByAxisMin(objects, axis)
		mid := len(objects) / 2
		node.left = NewBVH(objects[:mid])
		node.right = NewBVH(objects[mid:])
	}
	return node
}

// sortByAxisMin sorts objects by the minimum of their bounding box along
// the given axis (0=X, 1=Y, 2=Z), via straight insertion sort: scenes have
// at most a few thousand primitives and the simplicity keeps the splitting
// rule easy to audit.
func sortByAxisMin(objects []core.Primitive, axis int) {
	axisMin := func(p core.Primitive) float64 {
		return p.BoundingBox().Axis(axis).Min
	}
	for i := 1; i < len(objects); i++ {
		key := objects[i]
		keyMin := axisMin(key)
		j := i - 1
		for j >= 0 && axisMin(objects[j]) > keyMin {
			objects[j+1] = objects[j]
			j--
		}
		objects[j+1] = key
	}
}

// Hit implements core.Primitive: tests the node's box, then the left
// child, then the right child against an interval tightened by any left
// hit, so a closer left-side hit prunes the right subtree's candidates.
func (b *BVH) Hit(r core.Ray, t core.Interval, rng *core.RNG) (core.HitResult, bool) {
	if !b.bbox.Hit(r, t) {
		return core.HitResult{}, false
	}

	leftHit, hitLeft := b.left.Hit(r, t, rng)

	rightMax := t.Max
	if hitLeft {
		rightMax = leftHit.T
	}
	rightHit, hitRight := b.right.Hit(r, core.NewInterval(t.Min, rightMax), rng)

	if hitRight {
		return rightHit, true
	}
	if hitLeft {
		return leftHit, true
	}
	return core.HitResult{}, false
}

// BoundingBox implements core.Primitive.
func (b *BVH) BoundingBox() core.AABB {
	return b.bbox
}
