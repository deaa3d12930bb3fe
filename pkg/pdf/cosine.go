package pdf

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// Cosine is the cosine-weighted hemisphere PDF about a surface normal,
// built from an orthonormal basis (u, v, w=normal).
type Cosine struct {
	u, v, w core.Vec3
}

// NewCosine builds a cosine PDF oriented about w.
func NewCosine(w core.Vec3) *Cosine {
	w = w.Normalize()
	var a core.Vec3
	if math.Abs(w.X) > 0.9 {
		a = core.NewVec3(0, 1, 0)
	} else {
		a = core.NewVec3(1, 0, 0)
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return &Cosine{u: u, v: v, w: w}
}

func (c *Cosine) local(x, y, z float64) core.Vec3 {
	return c.u.Multiply(x).Add(c.v.Multiply(y)).Add(c.w.Multiply(z))
}

// Value implements core.PDF: max(0, cosθ)/π where θ is measured from w.
func (c *Cosine) Value(dir core.Vec3) float64 {
	cosineTheta := dir.Normalize().Dot(c.w)
	return math.Max(0, cosineTheta) / math.Pi
}

// Generate implements core.PDF: a cosine-weighted direction in the
// hemisphere about w.
func (c *Cosine) Generate(rng *core.RNG) core.Vec3 {
	r1 := rng.Float()
	r2 := rng.Float()

	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1 - r2)

	return c.local(x, y, z)
}
