package primitive

import "github.com/arlojansen/pathtracer/pkg/core"

// NewBox builds an axis-aligned box spanning the two given opposite
// corners, as a List of its six quad faces.
func NewBox(a, b core.Vec3, mat core.Material) *List {
	minP := core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
	maxP := core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))

	dx := core.NewVec3(maxP.X-minP.X, 0, 0)
	dy := core.NewVec3(0, maxP.Y-minP.Y, 0)
	dz := core.NewVec3(0, 0, maxP.Z-minP.Z)

	sides := NewList()
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, maxP.Z), dx, dy, mat))                            // front
	sides.Add(NewQuad(core.NewVec3(maxP.X, minP.Y, maxP.Z), dz.Negate(), dy, mat))                   // right
	sides.Add(NewQuad(core.NewVec3(maxP.X, minP.Y, minP.Z), dx.Negate(), dy, mat))                   // back
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dz, dy, mat))                            // left
	sides.Add(NewQuad(core.NewVec3(minP.X, maxP.Y, maxP.Z), dx, dz.Negate(), mat))                   // top
	sides.Add(NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dx, dz, mat))                            // bottom
	return sides
}
