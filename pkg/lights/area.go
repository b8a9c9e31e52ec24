package lights

import (
	"math"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
)

// AreaLight is a finite emitter over a sampleable shape, giving soft shadows
// by jittering samples over the shape's extent with cosine-weighted emission
type AreaLight struct {
	lightFrame
	Intensity        core.Vec3
	Shape            SampleableShape
	NumShadowSamples int
}

// NewAreaLight creates an area light over the given shape. The frame places
// the shape's center; its Z axis is the emission normal.
func NewAreaLight(intensity core.Vec3, shape SampleableShape, frame core.Frame, numShadowSamples int) *AreaLight {
	return &AreaLight{
		lightFrame:       lightFrame{frame: frame},
		Intensity:        intensity,
		Shape:            shape,
		NumShadowSamples: numShadowSamples,
	}
}

// ShadowSampleCount returns the configured per-light shadow ray count
func (a *AreaLight) ShadowSampleCount() int {
	return a.NumShadowSamples
}

// ShadowSample returns the deterministic sample toward the shape's center with
// inverse-square falloff
func (a *AreaLight) ShadowSample(point core.Vec3) ShadowSample {
	toLight := a.frame.Origin.Subtract(point)
	distance := toLight.Length()

	return ShadowSample{
		Radiance:  a.Intensity.Multiply(1 / (distance * distance)),
		Direction: toLight.Multiply(1 / distance),
		Distance:  distance,
		PDF:       1,
	}
}

// RandomShadowSample jitters the sample position over the shape's extent along
// the frame's tangent axes. Radiance is cosine-weighted against the shape's
// normal and the pdf is the uniform area density 1/(width·height).
func (a *AreaLight) RandomShadowSample(point core.Vec3, u, v float64) ShadowSample {
	width := a.Shape.Width()
	height := a.Shape.Height()

	origin := a.frame.Origin.
		Add(a.frame.X.Multiply((0.5 - u) * width)).
		Add(a.frame.Y.Multiply((0.5 - v) * height))

	toLight := origin.Subtract(point)
	distance := toLight.Length()
	direction := toLight.Multiply(1 / distance)

	cosine := math.Max(direction.Negate().Dot(a.frame.Z), 0)

	return ShadowSample{
		Radiance:  a.Intensity.Multiply(cosine / (distance * distance)),
		Direction: direction,
		Distance:  distance,
		PDF:       1 / (width * height),
	}
}

// SampleBackground returns zero: area lights contribute nothing to escaped rays
func (a *AreaLight) SampleBackground(direction core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// InitSampling is a no-op: area lights sample their shape directly
func (a *AreaLight) InitSampling() {}
