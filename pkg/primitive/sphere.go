// Package primitive implements the intersectable scene objects: sphere,
// quad, box, constant-density medium, the translate/rotateY transform
// decorators, the BVH aggregate, and the flat list aggregate (World).
package primitive

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// Sphere is either stationary or linearly moving between two centers over
// ray time t in [0,1].
type Sphere struct {
	Center1, Center2 core.Vec3
	Moving           bool
	Radius           float64
	Mat              core.Material
}

// NewSphere creates a stationary sphere.
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center1: center, Center2: center, Radius: radius, Mat: mat}
}

// NewMovingSphere creates a sphere whose center travels linearly from
// center1 at t=0 to center2 at t=1.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center1: center1, Center2: center2, Moving: true, Radius: radius, Mat: mat}
}

// centerAt returns the sphere's center at ray time t.
func (s *Sphere) centerAt(t float64) core.Vec3 {
	if !s.Moving {
		return s.Center1
	}
	return core.Lerp(s.Center1, s.Center2, t)
}

// Hit implements core.Primitive. rng is unused: sphere intersection is
// deterministic.
func (s *Sphere) Hit(r core.Ray, t core.Interval, rng *core.RNG) (core.HitResult, bool) {
	center := s.centerAt(r.Time)
	oc := center.Subtract(r.Origin)
	a := r.Direction.LengthSquared()
	h := r.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius
	disc := h*h - a*c
	if disc < 0 {
		return core.HitResult{}, false
	}
	sqrtd := math.Sqrt(disc)

	root := (h - sqrtd) / a
	if !t.Surrounds(root) {
		root = (h + sqrtd) / a
		if !t.Surrounds(root) {
			return core.HitResult{}, false
		}
	}

	var hit core.HitResult
	hit.T = root
	hit.P = r.At(root)
	outwardNormal := hit.P.Subtract(center).Divide(s.Radius)
	hit.SetFaceNormal(r, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)
	hit.Mat = s.Mat
	return hit, true
}

// sphereUV maps a point on the unit sphere to spherical (u,v) texture
// coordinates: θ=acos(-y), φ=atan2(-z,x)+π, u=φ/2π, v=θ/π.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox implements core.Primitive: the union of the boxes at t=0 and
// t=1, each inflated by (r,r,r). A stationary sphere's two endpoints
// coincide, so this degenerates correctly.
func (s *Sphere) BoundingBox() core.AABB {
	rvec := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABBFromPoints(s.centerAt(0).Subtract(rvec), s.centerAt(0).Add(rvec))
	box1 := core.NewAABBFromPoints(s.centerAt(1).Subtract(rvec), s.centerAt(1).Add(rvec))
	return box0.Union(box1)
}

// PDFValue implements core.Light: 1/solid_angle toward the sphere, where
// cosθmax=√(1-r²/|C-origin|²) and solid_angle=2π(1-cosθmax).
func (s *Sphere) PDFValue(origin, dir core.Vec3) float64 {
	_, isHit := s.Hit(core.NewRay(origin, dir), core.NewInterval(0.001, math.Inf(1)), nil)
	if !isHit {
		return 0
	}

	distSquared := s.Center1.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	if solidAngle <= 0 {
		return 0
	}
	return 1.0 / solidAngle
}

// Random implements core.Light: samples a direction uniformly over the
// cone subtended by the sphere as seen from origin.
func (s *Sphere) Random(origin core.Vec3, rng *core.RNG) core.Vec3 {
	direction := s.Center1.Subtract(origin)
	distSquared := direction.LengthSquared()

	w := direction.Normalize()
	var a core.Vec3
	if math.Abs(w.X) > 0.9 {
		a = core.NewVec3(0, 1, 0)
	} else {
		a = core.NewVec3(1, 0, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	r1 := rng.Float()
	r2 := rng.Float()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSquared))
	cosTheta := 1 + r2*(cosThetaMax-1)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * r1

	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta
	z := cosTheta

	local := u.Multiply(x).Add(v.Multiply(y)).Add(w.Multiply(z))
	return local
}
