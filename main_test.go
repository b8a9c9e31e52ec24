package main

import (
	"context"
	"testing"

	"github.com/amonkey/go-distribution-raytracer/pkg/integrator"
	"github.com/amonkey/go-distribution-raytracer/pkg/renderer"
	"github.com/amonkey/go-distribution-raytracer/pkg/scene"
)

type quietLogger struct{}

func (quietLogger) Printf(format string, args ...interface{}) {}

// End-to-end: a tiny Cornell render completes and produces a lit image
func TestRenderCornellEndToEnd(t *testing.T) {
	const width, height = 32, 32

	s := scene.NewCornellScene(width, height)
	s.Config.Samples = 4
	s.Config.AmbientSamples = 2
	s.Preprocess()

	raytracer := renderer.NewProgressiveRaytracer(
		s,
		integrator.NewDistribution(s.Config),
		width, height,
		renderer.ProgressiveConfig{
			TileSize:           16,
			InitialSamples:     1,
			MaxSamplesPerPixel: s.Config.Samples,
			MaxPasses:          2,
			NumWorkers:         2,
		},
		quietLogger{},
	)

	passChan, errChan := raytracer.RenderProgressive(context.Background())

	var final renderer.PassResult
	for result := range passChan {
		final = result
	}
	if err := <-errChan; err != nil {
		t.Fatal(err)
	}

	if final.Image == nil {
		t.Fatal("no image produced")
	}
	if final.Stats.MinSamples != s.Config.Samples {
		t.Errorf("min samples: got %d, expected %d", final.Stats.MinSamples, s.Config.Samples)
	}

	// The box interior is lit: some pixel must be nonblack
	lit := false
	bounds := final.Image.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !lit; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := final.Image.At(x, y).RGBA()
			if r > 0 || g > 0 || b > 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("rendered image is entirely black")
	}
}
