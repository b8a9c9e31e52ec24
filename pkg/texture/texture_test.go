package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
)

// checkerboard builds a 2x2 texture: red/green top row, blue/white bottom row
func checkerboard() *Texture {
	return New(2, 2, []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1),
	})
}

func TestTexture_At_Corners(t *testing.T) {
	tex := checkerboard()

	// V=1 is the top row in UV space
	if got := tex.At(core.NewVec2(0.1, 0.9)); got != core.NewVec3(1, 0, 0) {
		t.Errorf("top-left: got %v, expected red", got)
	}
	if got := tex.At(core.NewVec2(0.9, 0.9)); got != core.NewVec3(0, 1, 0) {
		t.Errorf("top-right: got %v, expected green", got)
	}
	if got := tex.At(core.NewVec2(0.1, 0.1)); got != core.NewVec3(0, 0, 1) {
		t.Errorf("bottom-left: got %v, expected blue", got)
	}
	if got := tex.At(core.NewVec2(0.9, 0.1)); got != core.NewVec3(1, 1, 1) {
		t.Errorf("bottom-right: got %v, expected white", got)
	}
}

func TestTexture_At_Wraps(t *testing.T) {
	tex := checkerboard()

	inside := tex.At(core.NewVec2(0.1, 0.9))
	wrapped := tex.At(core.NewVec2(1.1, -0.1))
	if inside != wrapped {
		t.Errorf("UV wrap: got %v, expected %v", wrapped, inside)
	}
}

func TestNewFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{B: 255, A: 255})

	tex := NewFromImage(img)
	if tex.Width != 2 || tex.Height != 1 {
		t.Fatalf("size: got %dx%d, expected 2x1", tex.Width, tex.Height)
	}

	if got := tex.AtPixel(0, 0); got.X < 0.99 || got.Y > 0.01 || got.Z > 0.01 {
		t.Errorf("pixel (0,0): got %v, expected red", got)
	}
	if got := tex.AtPixel(1, 0); got.Z < 0.99 {
		t.Errorf("pixel (1,0): got %v, expected blue", got)
	}
}
