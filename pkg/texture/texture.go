// Package texture provides 2D color textures for material slots and
// environment maps.
package texture

import (
	"image"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
)

// Texture is a 2D image of color samples
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// New creates a texture from a row-major pixel array
func New(width, height int, pixels []core.Vec3) *Texture {
	return &Texture{Width: width, Height: height, Pixels: pixels}
}

// NewFromImage converts a decoded image into a texture
func NewFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return New(width, height, pixels)
}

// At samples the texture at the given UV coordinates using nearest-neighbor
// filtering. UVs wrap; V=0 is the bottom row.
func (t *Texture) At(uv core.Vec2) core.Vec3 {
	// Wrap UV coordinates to [0, 1]
	u := uv.X - float64(int(uv.X))
	v := uv.Y - float64(int(uv.Y))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	// Flip V for image coordinates where the origin is top-left
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}

// AtPixel returns the color of the pixel at integer coordinates (x, y)
func (t *Texture) AtPixel(x, y int) core.Vec3 {
	return t.Pixels[y*t.Width+x]
}
