package lights

import (
	"github.com/amonkey/go-distribution-raytracer/pkg/core"
)

// DirectionalLight emits along its frame's forward axis from infinite
// distance with no falloff
type DirectionalLight struct {
	lightFrame
	Intensity core.Vec3
}

// NewDirectionalLight creates a directional light emitting along the given
// direction
func NewDirectionalLight(intensity, direction core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		lightFrame: lightFrame{frame: core.NewFrameFromZ(core.Vec3{}, direction.Normalize())},
		Intensity:  intensity,
	}
}

// ShadowSampleCount returns 1: the direction is fixed, one sample suffices
func (d *DirectionalLight) ShadowSampleCount() int {
	return 1
}

// ShadowSample returns the sample opposing the emission axis with unscaled
// intensity and infinite distance
func (d *DirectionalLight) ShadowSample(point core.Vec3) ShadowSample {
	return ShadowSample{
		Radiance:  d.Intensity,
		Direction: d.frame.Z.Negate(),
		Distance:  core.Infinity,
		PDF:       1,
	}
}

// RandomShadowSample delegates to the deterministic sample
func (d *DirectionalLight) RandomShadowSample(point core.Vec3, u, v float64) ShadowSample {
	return d.ShadowSample(point)
}

// SampleBackground returns zero: directional lights contribute nothing to
// escaped rays
func (d *DirectionalLight) SampleBackground(direction core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// InitSampling is a no-op: directional lights carry no sampling state
func (d *DirectionalLight) InitSampling() {}
