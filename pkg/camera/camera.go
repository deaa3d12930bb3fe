// Package camera turns a scene into pixels: ray generation with
// stratified, defocus-blurred sampling, the recursive radiance estimator,
// and the tile-parallel render driver.
package camera

import (
	"fmt"
	"math"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// Camera holds the derived viewport basis and sampling parameters for a
// single render. It is built once and then shared, read-only, across every
// worker goroutine.
type Camera struct {
	LookFrom core.Vec3
	Origin   core.Vec3

	pixelOrigin core.Vec3
	pixelDeltaU core.Vec3
	pixelDeltaV core.Vec3

	u, v, w core.Vec3 // camera basis: u=right, v=up, w=back (toward LookFrom)

	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	defocusAngle core.Angle

	ImageWidth, ImageHeight int
	SamplesPerPixel         int
	MaxDepth                int
	sqrtSpp                 int
	recipSqrtSpp            float64

	Background core.Color
}

// Config describes the parameters NewCamera needs to derive a viewport.
type Config struct {
	LookFrom, LookAt, Up core.Vec3
	VFov                 core.Angle // vertical field of view
	AspectRatio          float64
	ImageWidth           int
	DefocusAngle         core.Angle
	FocusDist            float64
	SamplesPerPixel      int
	MaxDepth             int
	Background           core.Color
}

// NewCamera derives the viewport basis, pixel grid, and defocus disk from
// cfg, following the classic look-from/look-at/vfov/focus-distance
// construction: the viewport height is fixed by vfov and focus distance,
// the width follows from the aspect ratio, and the basis vectors u/v/w are
// built from (LookFrom-LookAt) and Up via two cross products.
func NewCamera(cfg Config) *Camera {
	if cfg.AspectRatio <= 0 || cfg.ImageWidth <= 0 || cfg.SamplesPerPixel <= 0 {
		panic(fmt.Sprintf("camera: aspect_ratio=%v, image_width=%d, samples_per_pixel=%d must all be positive",
			cfg.AspectRatio, cfg.ImageWidth, cfg.SamplesPerPixel))
	}

	imageHeight := int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	theta := cfg.VFov.Radians()
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDist
	viewportWidth := viewportHeight * (float64(cfg.ImageWidth) / float64(imageHeight))

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(cfg.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := cfg.LookFrom.
		Subtract(w.Multiply(cfg.FocusDist)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixelOrigin := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDist * math.Tan(cfg.DefocusAngle.Radians()/2)

	sqrtSpp := int(math.Sqrt(float64(cfg.SamplesPerPixel)))

	return &Camera{
		LookFrom:        cfg.LookFrom,
		Origin:          cfg.LookFrom,
		pixelOrigin:     pixelOrigin,
		pixelDeltaU:     pixelDeltaU,
		pixelDeltaV:     pixelDeltaV,
		u:               u,
		v:               v,
		w:               w,
		defocusDiskU:    u.Multiply(defocusRadius),
		defocusDiskV:    v.Multiply(defocusRadius),
		defocusAngle:    cfg.DefocusAngle,
		ImageWidth:      cfg.ImageWidth,
		ImageHeight:     imageHeight,
		SamplesPerPixel: sqrtSpp * sqrtSpp,
		MaxDepth:        cfg.MaxDepth,
		sqrtSpp:         sqrtSpp,
		recipSqrtSpp:    1.0 / float64(sqrtSpp),
		Background:      cfg.Background,
	}
}

// Ray returns a randomly jittered ray through pixel (px, py), sample index
// sample of SamplesPerPixel. Samples are stratified into a sqrtSpp x
// sqrtSpp sub-pixel grid rather than drawn uniformly over the whole pixel,
// which reduces variance for a fixed sample count. The ray additionally
// carries a random time in [0,1) for motion blur and, when DefocusAngle is
// positive, originates from a random point on the defocus disk.
func (c *Camera) Ray(px, py, sample int, rng *core.RNG) core.Ray {
	si := sample % c.sqrtSpp
	sj := sample / c.sqrtSpp

	offset := core.NewVec3(
		(float64(si)+rng.Float())*c.recipSqrtSpp-0.5,
		(float64(sj)+rng.Float())*c.recipSqrtSpp-0.5,
		0,
	)

	pixelSample := c.pixelOrigin.
		Add(c.pixelDeltaU.Multiply(float64(px) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(py) + offset.Y))

	origin := c.Origin
	if c.defocusAngle.Radians() > 0 {
		origin = c.defocusSample(rng)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), rng.Float())
}

func (c *Camera) defocusSample(rng *core.RNG) core.Vec3 {
	p := rng.InUnitDisk()
	return c.Origin.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
