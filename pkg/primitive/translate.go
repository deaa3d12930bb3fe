package primitive

import "github.com/arlojansen/pathtracer/pkg/core"

// Translate decorates a child primitive, shifting it by Offset: the
// incoming ray origin is shifted back on the way in, and the hit point is
// shifted forward on the way out.
type Translate struct {
	Child  core.Primitive
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps child, translated by offset.
func NewTranslate(child core.Primitive, offset core.Vec3) *Translate {
	return &Translate{Child: child, Offset: offset, bbox: child.BoundingBox().Translate(offset)}
}

// Hit implements core.Primitive.
func (tr *Translate) Hit(r core.Ray, t core.Interval, rng *core.RNG) (core.HitResult, bool) {
	offsetRay := core.NewRayAtTime(r.Origin.Subtract(tr.Offset), r.Direction, r.Time)

	hit, ok := tr.Child.Hit(offsetRay, t, rng)
	if !ok {
		return core.HitResult{}, false
	}
	hit.P = hit.P.Add(tr.Offset)
	return hit, true
}

// BoundingBox implements core.Primitive.
func (tr *Translate) BoundingBox() core.AABB {
	return tr.bbox
}
