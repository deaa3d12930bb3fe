package texture

import "github.com/arlojansen/pathtracer/pkg/core"

// cyan is returned for any undecodable or missing image, matching the
// external decode_image(path) contract's error signal (Height <= 0).
var cyan = core.NewVec3(0, 1, 1)

// Image is a nearest-pixel-lookup texture backed by already-decoded RGBA8
// pixel data. Decoding image files is outside the rendering core — see
// pkg/imageio for the concrete decode_image(path) provider.
type Image struct {
	Width, Height int
	Pixels        []byte // RGBA8, row-major, top-to-bottom
}

// NewImage wraps decoded pixel data. Height <= 0 marks a decode failure;
// Value then always returns cyan.
func NewImage(width, height int, rgba8 []byte) *Image {
	return &Image{Width: width, Height: height, Pixels: rgba8}
}

// Value implements core.Texture. u is clamped to [0,1]; v is flipped
// (v <- 1-v) so that image-space "up" matches world-space "up".
func (img *Image) Value(u, v float64, p core.Vec3) core.Color {
	if img.Height <= 0 {
		return cyan
	}

	u = core.NewInterval(0, 1).Clamp(u)
	v = 1.0 - core.NewInterval(0, 1).Clamp(v)

	i := int(u * float64(img.Width))
	j := int(v * float64(img.Height))
	if i >= img.Width {
		i = img.Width - 1
	}
	if j >= img.Height {
		j = img.Height - 1
	}

	const colorScale = 1.0 / 255.0
	offset := (j*img.Width + i) * 4
	if offset+2 >= len(img.Pixels) {
		return cyan
	}

	return core.NewVec3(
		float64(img.Pixels[offset])*colorScale,
		float64(img.Pixels[offset+1])*colorScale,
		float64(img.Pixels[offset+2])*colorScale,
	)
}
