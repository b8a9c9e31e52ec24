package lights

import (
	"math"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/texture"
)

// EnvironmentLight surrounds the scene at infinite distance. Its radiance is
// constant intensity; a bound texture feeds the importance-sampling
// distribution built by InitSampling.
type EnvironmentLight struct {
	lightFrame
	Intensity          core.Vec3
	Texture            *texture.Texture
	Hemisphere         bool // Restrict emission to the frame's upper hemisphere
	NumShadowSamples   int
	ImportanceSampling bool

	// Owned exclusively by this light, rebuilt only by InitSampling
	distribution *core.Distribution2D
}

// NewEnvironmentLight creates an environment light with the given intensity
func NewEnvironmentLight(intensity core.Vec3, numShadowSamples int) *EnvironmentLight {
	return &EnvironmentLight{
		lightFrame:       lightFrame{frame: core.IdentityFrame()},
		Intensity:        intensity,
		NumShadowSamples: numShadowSamples,
	}
}

// ShadowSampleCount returns the configured per-light shadow ray count
func (e *EnvironmentLight) ShadowSampleCount() int {
	return e.NumShadowSamples
}

// ShadowSample approximates the environment with a single direction toward
// the frame origin. The π factor stands in for the hemisphere integral of the
// constant intensity.
func (e *EnvironmentLight) ShadowSample(point core.Vec3) ShadowSample {
	return ShadowSample{
		Radiance:  e.Intensity.Multiply(math.Pi),
		Direction: e.frame.Origin.Subtract(point).Normalize(),
		Distance:  core.Infinity,
		PDF:       1,
	}
}

// RandomShadowSample delegates to the deterministic sample
func (e *EnvironmentLight) RandomShadowSample(point core.Vec3, u, v float64) ShadowSample {
	return e.ShadowSample(point)
}

// SampleBackground returns the environment intensity for any escaped ray.
// The direction is interpreted in the light's local frame; a bound texture is
// not yet looked up here.
func (e *EnvironmentLight) SampleBackground(direction core.Vec3) core.Vec3 {
	return e.Intensity
}

// InitSampling builds the importance-sampling distribution over the bound
// texture's pixel grid: per-pixel luminance weighted by the sine of the row's
// polar angle. Any previous distribution is replaced. A no-op when importance
// sampling is disabled or no texture is bound.
func (e *EnvironmentLight) InitSampling() {
	if !e.ImportanceSampling || e.Texture == nil {
		return
	}

	values := make([][]float64, e.Texture.Height)
	for y := 0; y < e.Texture.Height; y++ {
		sinTheta := math.Sin(math.Pi * (float64(y) + 0.5) / float64(e.Texture.Height))
		row := make([]float64, e.Texture.Width)
		for x := 0; x < e.Texture.Width; x++ {
			row[x] = e.Texture.AtPixel(x, y).Luminance() * sinTheta
		}
		values[y] = row
	}

	e.distribution = core.NewDistribution2D(values)
}

// Distribution returns the importance-sampling distribution, nil before
// InitSampling or when importance sampling is not configured
func (e *EnvironmentLight) Distribution() *core.Distribution2D {
	return e.distribution
}
