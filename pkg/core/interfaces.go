package core

// HitResult is populated by a primitive when a ray intersects it.
type HitResult struct {
	P         Vec3     // world-space hit point
	Normal    Vec3     // outward surface normal, oriented via SetFaceNormal
	Mat       Material // material at the hit point
	T         float64  // ray parameter of the hit
	U, V      float64  // texture coordinates in [0,1]^2
	FrontFace bool     // true iff the ray hit the outward-facing side
}

// SetFaceNormal orients Normal so that dot(ray.Direction, Normal) < 0,
// recording whether the ray hit the front (outward) face.
func (h *HitResult) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult is populated by a material's Scatter call.
type ScatterResult struct {
	Attenuation Color // color attenuation applied to the continuation
	PDF         PDF   // nil for specular materials (SkipPDF == true)
	SkipPDF     bool  // true for specular materials: no importance sampling
	SkipPDFRay  Ray   // the precomputed continuation ray, valid iff SkipPDF
}

// Primitive is any intersectable scene object: spheres, quads, boxes,
// decorators (translate/rotate), aggregates (BVH nodes, lists), and
// volumetric media all implement it. rng is threaded through even though
// most primitives ignore it, because ConstantMedium needs a random free
// path sample and primitives are immutable, shared-by-handle objects with
// no room for a private mutable generator (see pkg/core.RNG: one instance
// per worker goroutine, never shared).
type Primitive interface {
	Hit(r Ray, t Interval, rng *RNG) (HitResult, bool)
	BoundingBox() AABB
}

// Light is the optional capability a Primitive exposes when it can be used
// for next-event estimation (area and sphere lights).
type Light interface {
	Primitive
	// PDFValue returns the solid-angle density of sampling a direction
	// toward this primitive from origin, or 0 if dir misses it.
	PDFValue(origin, dir Vec3) float64
	// Random returns a direction from origin toward a random point on the
	// primitive, distributed per PDFValue.
	Random(origin Vec3, rng *RNG) Vec3
}

// Material is the scatter/emission/PDF triple every surface shader
// implements.
type Material interface {
	// Scatter proposes a continuation ray and attenuation for rayIn hitting
	// hit. The second return value is false if the material absorbs the ray.
	Scatter(rayIn Ray, hit HitResult, rng *RNG) (ScatterResult, bool)
	// ScatterPDF returns the material's own density of having produced
	// scattered given rayIn and hit; used to weight indirect samples drawn
	// from the mixture PDF.
	ScatterPDF(rayIn Ray, hit HitResult, scattered Ray) float64
	// Emitted returns the light emitted at the hit point, zero for
	// non-emissive materials.
	Emitted(rayIn Ray, hit HitResult, u, v float64, p Vec3) Color
}

// Texture maps a surface point to a color.
type Texture interface {
	Value(u, v float64, p Vec3) Color
}

// PDF is a probability density function over directions on the unit
// sphere, paired with a sampler that draws from that density.
type PDF interface {
	Value(dir Vec3) float64
	Generate(rng *RNG) Vec3
}
