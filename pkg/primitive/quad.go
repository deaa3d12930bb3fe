package primitive

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// Quad is a planar, axis-free parallelogram defined by a corner and two
// edge vectors.
type Quad struct {
	Q, U, V core.Vec3
	Mat     core.Material

	normal core.Vec3
	d      float64
	w      core.Vec3
	area   float64
	bbox   core.AABB
}

// NewQuad creates a quad from a corner point and two edge vectors.
func NewQuad(q, u, v core.Vec3, mat core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()
	d := normal.Dot(q)
	w := n.Divide(n.Dot(n))

	bbox := core.NewAABBFromPoints(q, q.Add(u).Add(v)).Union(core.NewAABBFromPoints(q.Add(u), q.Add(v)))

	return &Quad{
		Q: q, U: u, V: v, Mat: mat,
		normal: normal, d: d, w: w, area: n.Length(), bbox: bbox,
	}
}

// Hit implements core.Primitive. rng is unused: quad intersection is
// deterministic.
func (q *Quad) Hit(r core.Ray, t core.Interval, rng *core.RNG) (core.HitResult, bool) {
	denom := q.normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-8 {
		return core.HitResult{}, false
	}

	tHit := (q.d - q.normal.Dot(r.Origin)) / denom
	if !t.Contains(tHit) {
		return core.HitResult{}, false
	}

	p := r.At(tHit)
	hitVec := p.Subtract(q.Q)
	alpha := q.w.Dot(hitVec.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVec))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return core.HitResult{}, false
	}

	var hit core.HitResult
	hit.T = tHit
	hit.P = p
	hit.U, hit.V = alpha, beta
	hit.Mat = q.Mat
	hit.SetFaceNormal(r, q.normal)
	return hit, true
}

// BoundingBox implements core.Primitive.
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// PDFValue implements core.Light: dist²/(|cos|*area) on hit, else 0.
func (q *Quad) PDFValue(origin, dir core.Vec3) float64 {
	hit, isHit := q.Hit(core.NewRay(origin, dir), core.NewInterval(0.001, math.Inf(1)), nil)
	if !isHit {
		return 0
	}

	distSquared := hit.T * hit.T * dir.LengthSquared()
	cosine := math.Abs(dir.Dot(hit.Normal) / dir.Length())
	if cosine < 1e-8 {
		return 0
	}
	return distSquared / (cosine * q.area)
}

// Random implements core.Light: a uniform random point on the quad, minus
// origin.
func (q *Quad) Random(origin core.Vec3, rng *core.RNG) core.Vec3 {
	p := q.Q.Add(q.U.Multiply(rng.Float())).Add(q.V.Multiply(rng.Float()))
	return p.Subtract(origin)
}
