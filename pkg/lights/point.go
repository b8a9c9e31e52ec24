package lights

import (
	"github.com/amonkey/go-distribution-raytracer/pkg/core"
)

// PointLight emits isotropically from its frame origin with inverse-square
// falloff
type PointLight struct {
	lightFrame
	Intensity core.Vec3
}

// NewPointLight creates a point light at the given position
func NewPointLight(intensity, position core.Vec3) *PointLight {
	return &PointLight{
		lightFrame: lightFrame{frame: core.NewFrameAt(position)},
		Intensity:  intensity,
	}
}

// ShadowSampleCount returns 1: a point source is fully determined by one sample
func (p *PointLight) ShadowSampleCount() int {
	return 1
}

// ShadowSample returns the sample toward the light's position with
// inverse-square falloff
func (p *PointLight) ShadowSample(point core.Vec3) ShadowSample {
	toLight := p.frame.Origin.Subtract(point)
	distance := toLight.Length()

	return ShadowSample{
		Radiance:  p.Intensity.Multiply(1 / (distance * distance)),
		Direction: toLight.Multiply(1 / distance),
		Distance:  distance,
		PDF:       1,
	}
}

// RandomShadowSample delegates to the deterministic sample
func (p *PointLight) RandomShadowSample(point core.Vec3, u, v float64) ShadowSample {
	return p.ShadowSample(point)
}

// SampleBackground returns zero: point lights contribute nothing to escaped rays
func (p *PointLight) SampleBackground(direction core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// InitSampling is a no-op: point lights carry no sampling state
func (p *PointLight) InitSampling() {}
