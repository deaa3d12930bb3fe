package core

import "math"

// Vec3 is a three-component vector. It doubles as a point and, aliased as
// Color, as a linear RGB triple. Vec3 is an immutable value type: every
// operation returns a new Vec3 rather than mutating the receiver.
type Vec3 struct {
	X, Y, Z float64
}

// Color is a linear RGB color. Components are unbounded and non-negative
// for physically meaningful radiance values, but nothing here enforces that.
type Color = Vec3

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Subtract returns the component-wise difference of two vectors.
func (v Vec3) Subtract(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Multiply returns the vector scaled by a scalar.
func (v Vec3) Multiply(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// MultiplyVec returns the component-wise (Hadamard) product of two vectors.
func (v Vec3) MultiplyVec(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Divide returns the vector scaled by 1/s.
func (v Vec3) Divide(s float64) Vec3 {
	return v.Multiply(1.0 / s)
}

// Negate returns the additive inverse of the vector.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction. The zero vector
// normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Divide(length)
}

// NearZero reports whether all components are smaller than a small epsilon,
// used to catch degenerate scatter directions before they reach 0/0 math.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Reflect returns v reflected about a surface with the given normal.
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Refract returns v refracted through a surface with the given normal and
// ratio of refractive indices (incident over transmitted), using Snell's
// law. v must be a unit vector.
func (v Vec3) Refract(normal Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(v.Negate().Dot(normal), 1.0)
	rOutPerp := v.Add(normal.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := normal.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Clamp returns a vector with each component clamped to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{
		X: math.Max(lo, math.Min(hi, v.X)),
		Y: math.Max(lo, math.Min(hi, v.Y)),
		Z: math.Max(lo, math.Min(hi, v.Z)),
	}
}

// At returns the component indexed by axis (0=X, 1=Y, 2=Z).
func (v Vec3) At(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Subtract(a).Multiply(t))
}
