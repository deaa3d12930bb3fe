// Package texture provides color providers sampled at a surface hit:
// solid colors, a 3-D checker lattice, nearest-pixel image lookup, and
// Perlin-noise turbulence.
package texture

import "github.com/arlojansen/pathtracer/pkg/core"

// Solid is a texture that returns the same color everywhere.
type Solid struct {
	Color core.Color
}

// NewSolid creates a solid-color texture.
func NewSolid(c core.Color) *Solid {
	return &Solid{Color: c}
}

// Value implements core.Texture.
func (s *Solid) Value(u, v float64, p core.Vec3) core.Color {
	return s.Color
}
