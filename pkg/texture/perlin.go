package texture

import (
	"github.com/chewxy/math32"

	"github.com/arlojansen/pathtracer/pkg/core"
)

const perlinPointCount = 256

// perlin is a deterministic gradient-noise generator: 256 random unit
// vectors and three independent permutations of [0,255]. The inner
// lattice blend runs in float32 (via math32) since the book's original
// noise implementation is single-precision and the extra bits of a
// float64 buy nothing for a value that gets summed into 7 octaves and
// squashed through a sine.
type perlin struct {
	randVec [perlinPointCount]vec32
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

type vec32 struct {
	x, y, z float32
}

func (v vec32) dot(x, y, z float32) float32 {
	return v.x*x + v.y*y + v.z*z
}

// newPerlin builds a Perlin lattice from the given RNG, so that noise
// textures are reproducible under the shared fixed-seed RNG.
func newPerlin(rng *core.RNG) *perlin {
	p := &perlin{}
	for i := range p.randVec {
		v := rng.Vec3Range(-1, 1).Normalize()
		p.randVec[i] = vec32{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	p.permX = generatePerm(rng)
	p.permY = generatePerm(rng)
	p.permZ = generatePerm(rng)
	return p
}

func generatePerm(rng *core.RNG) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		j := rng.Int(0, i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// noise evaluates the smoothed gradient noise at p.
func (pn *perlin) noise(p core.Vec3) float32 {
	x, y, z := float32(p.X), float32(p.Y), float32(p.Z)

	u := x - math32.Floor(x)
	v := y - math32.Floor(y)
	w := z - math32.Floor(z)

	i := int(math32.Floor(x))
	j := int(math32.Floor(y))
	k := int(math32.Floor(z))

	var c [2][2][2]vec32
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.randVec[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// perlinInterp does Hermite-smoothstep trilinear interpolation of the
// eight surrounding gradient dot-products.
func perlinInterp(c [2][2][2]vec32, u, v, w float32) float32 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum float32
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weightV := vec32{u - float32(i), v - float32(j), w - float32(k)}
				fi, fj, fk := float32(i), float32(j), float32(k)
				iw := fi*uu + (1-fi)*(1-uu)
				jw := fj*vv + (1-fj)*(1-vv)
				kw := fk*ww + (1-fk)*(1-ww)
				accum += iw * jw * kw * c[i][j][k].dot(weightV.x, weightV.y, weightV.z)
			}
		}
	}
	return accum
}

// turbulence sums |noise| over depth octaves, halving amplitude and
// doubling frequency each step.
func (pn *perlin) turbulence(p core.Vec3, depth int) float32 {
	var accum float32
	temp := p
	weight := float32(1.0)

	for i := 0; i < depth; i++ {
		accum += weight * math32.Abs(pn.noise(temp))
		weight *= 0.5
		temp = temp.Multiply(2)
	}
	return math32.Abs(accum)
}
