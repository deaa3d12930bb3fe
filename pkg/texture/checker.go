package texture

import (
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// Checker alternates between two sub-textures on a 3-D sign lattice of the
// given scale.
type Checker struct {
	InvScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewChecker creates a checker texture from two solid colors.
func NewChecker(scale float64, even, odd core.Color) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: NewSolid(even), Odd: NewSolid(odd)}
}

// NewCheckerTextures creates a checker texture from two arbitrary textures.
func NewCheckerTextures(scale float64, even, odd core.Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// Value implements core.Texture.
func (c *Checker) Value(u, v float64, p core.Vec3) core.Color {
	x := int(math.Floor(p.X * c.InvScale))
	y := int(math.Floor(p.Y * c.InvScale))
	z := int(math.Floor(p.Z * c.InvScale))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
