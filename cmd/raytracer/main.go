// Command raytracer renders one of a handful of example scenes to a PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/arlojansen/pathtracer/pkg/imageio"
	"github.com/arlojansen/pathtracer/pkg/log"
	"github.com/arlojansen/pathtracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "sphere", "Scene: sphere, cornell, dielectric, motion, smoke")
	width := flag.Int("width", 400, "Image width in pixels")
	spp := flag.Int("spp", 64, "Samples per pixel")
	depth := flag.Int("depth", 20, "Maximum ray recursion depth")
	threads := flag.Int("threads", 0, "Worker goroutines; 0 uses runtime.NumCPU()")
	out := flag.String("out", "render.png", "Output PNG path")
	density := flag.Float64("density", 0.01, "Constant-medium density (smoke scene only)")
	flag.Parse()

	var sc *scene.Scene
	switch *sceneName {
	case "sphere":
		sc = scene.SphereOnGround(*width, *spp, *depth)
	case "cornell":
		sc = scene.CornellBox(*width, *spp, *depth)
	case "dielectric":
		sc = scene.DielectricFocus(*width, *spp, *depth)
	case "motion":
		sc = scene.MotionBlur(*width, *spp, *depth)
	case "smoke":
		sc = scene.SmokeBox(*width, *spp, *depth, *density)
	default:
		fmt.Fprintf(os.Stderr, "unknown scene %q\n", *sceneName)
		os.Exit(1)
	}

	logger := log.Default()
	logger.Printf("rendering %q: %dx%d, %d spp, depth %d", *sceneName, sc.Camera.ImageWidth, sc.Camera.ImageHeight, sc.Camera.SamplesPerPixel, *depth)

	start := time.Now()
	fb := sc.Render(*threads, logger)
	logger.Printf("rendered in %v", time.Since(start))

	if err := imageio.WritePNG(fb, *out); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	logger.Printf("wrote %s", *out)
}
