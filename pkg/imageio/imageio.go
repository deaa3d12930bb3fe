// Package imageio is the renderer's only point of contact with the
// filesystem and stdlib image codecs: writing the final framebuffer as a
// PNG, and decoding source images for pkg/texture.Image.
package imageio

import (
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"math"
	"os"

	"github.com/arlojansen/pathtracer/pkg/core"
)

// WritePNG gamma-corrects (γ=2) and quantizes fb to 8-bit RGB and writes it
// as a PNG to path. NaN/Inf components (which can appear from degenerate
// BSDF math) are scrubbed to 0 before gamma correction.
func WritePNG(fb [][]core.Color, path string) error {
	height := len(fb)
	if height == 0 {
		return os.WriteFile(path, nil, 0644)
	}
	width := len(fb[0])

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	unit := core.NewInterval(0, 0.999)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := fb[y][x]
			r := scrub(c.X)
			g := scrub(c.Y)
			b := scrub(c.Z)

			r = unit.Clamp(core.LinearToGamma(r))
			g = unit.Clamp(core.LinearToGamma(g))
			b = unit.Clamp(core.LinearToGamma(b))

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(256 * r),
				G: uint8(256 * g),
				B: uint8(256 * b),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func scrub(c float64) float64 {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0
	}
	return c
}

// DecodeImage reads and decodes an image file (any format registered with
// the standard image package, via its blank _ "image/..." imports) into
// row-major RGBA8 pixel data. On any failure it returns a zero-height
// result, the decode-failure signal pkg/texture.Image's Value checks for.
func DecodeImage(path string) (width, height int, rgba8 []byte) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return 0, 0, nil
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]byte, w*h*4)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			offset := (y*w + x) * 4
			out[offset] = byte(r >> 8)
			out[offset+1] = byte(g >> 8)
			out[offset+2] = byte(b >> 8)
			out[offset+3] = byte(a >> 8)
		}
	}

	return w, h, out
}
