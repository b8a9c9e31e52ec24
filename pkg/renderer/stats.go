package renderer

import (
	"math/rand"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
)

// RenderStats summarizes a render pass
type RenderStats struct {
	TotalPixels    int
	TotalSamples   int
	AverageSamples float64
	MaxSamples     int // Samples allowed per pixel this pass
	MinSamples     int // Fewest samples taken by any pixel
	MaxSamplesUsed int // Most samples taken by any pixel
}

// PixelStats is the accumulation buffer entry for one pixel: a running
// radiance sum and sample count. More samples may be added at any time;
// the pixel value is always sum/count.
type PixelStats struct {
	ColorAccum  core.Vec3
	SampleCount int

	// The pixel's own sample stream. Owning the stream per pixel keeps
	// sample k identical no matter how passes or tiles partition the
	// budget, so refinement sums match a single larger pass exactly.
	random *rand.Rand
}

// Random returns the pixel's sample stream, creating it on first use from a
// seed derived from the pixel coordinates
func (ps *PixelStats) Random(x, y int) *rand.Rand {
	if ps.random == nil {
		ps.random = rand.New(rand.NewSource(int64(y)<<32 | int64(x)))
	}
	return ps.random
}

// AddSample accumulates one radiance sample
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the mean of the accumulated samples
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
