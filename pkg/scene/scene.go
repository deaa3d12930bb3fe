// Package scene builds the example scenes exercised by the render driver
// and by the end-to-end test scenarios: a simple sphere-on-ground scene, a
// Cornell box, a dielectric depth-of-field test, a motion-blur test, and a
// constant-medium absorption test.
package scene

import (
	"github.com/arlojansen/pathtracer/pkg/camera"
	"github.com/arlojansen/pathtracer/pkg/core"
	"github.com/arlojansen/pathtracer/pkg/log"
	"github.com/arlojansen/pathtracer/pkg/material"
	"github.com/arlojansen/pathtracer/pkg/primitive"
)

// Scene bundles everything the render driver needs: a camera already sized
// for the scene's aspect ratio, the (optimized) primitive tree, and the
// light subset used for next-event estimation.
type Scene struct {
	Camera *camera.Camera
	World  core.Primitive
	Lights core.Light // nil if the scene has no importance-sampled lights
}

func (s *Scene) integratorWorld() camera.World {
	return camera.World{Scene: s.World, Lights: s.Lights}
}

// Render renders s through its camera with the given thread count,
// returning the accumulated (not yet gamma-corrected) framebuffer.
func (s *Scene) Render(threadCount int, logger log.Logger) camera.Framebuffer {
	return camera.Render(s.Camera, s.integratorWorld(), threadCount, logger)
}

// SphereOnGround builds the single-sphere, single-ground-plane scene used
// as the minimal end-to-end smoke test: a Lambertian sphere resting on a
// much larger Lambertian sphere standing in for a ground plane, lit only
// by the sky background (no explicit lights, so the light half of the
// integrator's mixture PDF contributes no density).
func SphereOnGround(imageWidth int, samplesPerPixel, maxDepth int) *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))

	world := primitive.NewListOf(
		primitive.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		primitive.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
	)
	world.Optimize()

	cam := camera.NewCamera(camera.Config{
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            core.Degrees(90),
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      imageWidth,
		DefocusAngle:    core.Degrees(0),
		FocusDist:       1.0,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		Background:      skyBackground(),
	})

	return &Scene{Camera: cam, World: world}
}

// skyBackground returns a light sky-blue, used as a flat Background rather
// than a per-ray gradient so every primitive (including volumetric media)
// sees a uniform miss color.
func skyBackground() core.Color {
	return core.NewVec3(0.7, 0.8, 1.0)
}

// CornellBox builds the canonical Cornell box: red/green side walls,
// white floor/ceiling/back wall, a single emissive quad light in the
// ceiling, and two white Lambertian boxes rotated about Y at different
// heights, testing soft shadows and color bleeding.
func CornellBox(imageSize int, samplesPerPixel, maxDepth int) *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	lightMat := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	world := primitive.NewList()

	// walls
	world.Add(primitive.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green))
	world.Add(primitive.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red))
	world.Add(primitive.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))
	world.Add(primitive.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white))
	world.Add(primitive.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white))

	lightQuad := primitive.NewQuad(core.NewVec3(213, 554, 227), core.NewVec3(130, 0, 0), core.NewVec3(0, 0, 105), lightMat)
	world.Add(lightQuad)

	tallBox := primitive.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallRotated := primitive.NewRotateY(tallBox, core.Degrees(15))
	tall := primitive.NewTranslate(tallRotated, core.NewVec3(265, 0, 295))
	world.Add(tall)

	shortBox := primitive.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shortRotated := primitive.NewRotateY(shortBox, core.Degrees(-18))
	short := primitive.NewTranslate(shortRotated, core.NewVec3(130, 0, 65))
	world.Add(short)

	lights := primitive.NewListOf(lightQuad)

	world.Optimize()

	cam := camera.NewCamera(camera.Config{
		LookFrom:        core.NewVec3(278, 278, -800),
		LookAt:          core.NewVec3(278, 278, 0),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            core.Degrees(40),
		AspectRatio:     1.0,
		ImageWidth:      imageSize,
		DefocusAngle:    core.Degrees(0),
		FocusDist:       10.0,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		Background:      core.NewVec3(0, 0, 0),
	})

	return &Scene{Camera: cam, World: world, Lights: lights}
}

// DielectricFocus builds the depth-of-field test: a glass sphere in sharp
// focus at the focal plane, and a displaced metal sphere outside it that
// should come out visibly blurred by the defocus disk.
func DielectricFocus(imageWidth int, samplesPerPixel, maxDepth int) *Scene {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)

	world := primitive.NewListOf(
		primitive.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		primitive.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		primitive.NewSphere(core.NewVec3(3, 1, -2), 1.0, metal),
	)
	world.Optimize()

	cam := camera.NewCamera(camera.Config{
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 1, 0),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            core.Degrees(20),
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      imageWidth,
		DefocusAngle:    core.Degrees(10),
		FocusDist:       13.3,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		Background:      skyBackground(),
	})

	return &Scene{Camera: cam, World: world}
}

// MotionBlur builds the moving-sphere test: a sphere translating linearly
// between two centers over ray time [0,1] above a static ground plane.
func MotionBlur(imageWidth int, samplesPerPixel, maxDepth int) *Scene {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	moving := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.8))

	center1 := core.NewVec3(0, 0.5, 0)
	center2 := center1.Add(core.NewVec3(0, 0.5, 0))

	world := primitive.NewListOf(
		primitive.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		primitive.NewMovingSphere(center1, center2, 0.5, moving),
	)
	world.Optimize()

	cam := camera.NewCamera(camera.Config{
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            core.Degrees(20),
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      imageWidth,
		DefocusAngle:    core.Degrees(0),
		FocusDist:       10.0,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		Background:      skyBackground(),
	})

	return &Scene{Camera: cam, World: world}
}

// SmokeBox builds the constant-medium absorption test: a Cornell-style box
// with a light, filled with fog of the given density. Doubling density
// should roughly halve the mean pixel luminance seen through the medium.
func SmokeBox(imageSize int, samplesPerPixel, maxDepth int, density float64) *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	lightMat := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	world := primitive.NewList()
	world.Add(primitive.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), white))
	world.Add(primitive.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), white))
	world.Add(primitive.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))
	world.Add(primitive.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white))
	world.Add(primitive.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white))

	lightQuad := primitive.NewQuad(core.NewVec3(213, 554, 227), core.NewVec3(130, 0, 0), core.NewVec3(0, 0, 105), lightMat)
	world.Add(lightQuad)

	box := primitive.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(300, 300, 300), white)
	positioned := primitive.NewTranslate(box, core.NewVec3(130, 0, 130))
	smoke := primitive.NewConstantMedium(positioned, density, material.NewIsotropic(core.NewVec3(0, 0, 0)))
	world.Add(smoke)

	lights := primitive.NewListOf(lightQuad)

	world.Optimize()

	cam := camera.NewCamera(camera.Config{
		LookFrom:        core.NewVec3(278, 278, -800),
		LookAt:          core.NewVec3(278, 278, 0),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            core.Degrees(40),
		AspectRatio:     1.0,
		ImageWidth:      imageSize,
		DefocusAngle:    core.Degrees(0),
		FocusDist:       10.0,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
		Background:      core.NewVec3(0, 0, 0),
	})

	return &Scene{Camera: cam, World: world, Lights: lights}
}
