package material

import (
	"math"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/texture"
)

// Lambert is a perfectly diffuse material
type Lambert struct {
	normalMapped
	Diffuse        core.Vec3
	DiffuseTexture *texture.Texture
}

// NewLambert creates a diffuse material with a solid color
func NewLambert(diffuse core.Vec3) *Lambert {
	return &Lambert{Diffuse: diffuse}
}

// HasTextures reports whether the diffuse texture slot is bound
func (l *Lambert) HasTextures() bool {
	return l.DiffuseTexture != nil
}

// ResolveTextures returns a texture-free copy carrying the base diffuse color
func (l *Lambert) ResolveTextures(uv core.Vec2) Material {
	return &Lambert{Diffuse: l.Diffuse}
}

// DiffuseAlbedo returns the diffuse reflectance color
func (l *Lambert) DiffuseAlbedo() core.Vec3 {
	mustBeResolved(l)
	return l.Diffuse
}

// Emit returns zero: Lambert surfaces do not emit
func (l *Lambert) Emit(frame core.Frame, wo core.Vec3) core.Vec3 {
	mustBeResolved(l)
	return core.Vec3{}
}

// BRDFCos evaluates diffuse/π × cosine
func (l *Lambert) BRDFCos(frame core.Frame, wi, wo core.Vec3) core.Vec3 {
	mustBeResolved(l)
	if wi.Dot(frame.Z) <= 0 || wo.Dot(frame.Z) <= 0 {
		return core.Vec3{}
	}
	return l.Diffuse.Multiply(math.Abs(wi.Dot(frame.Z)) / math.Pi)
}

// SampleBRDFCos draws a cosine-weighted incoming direction
func (l *Lambert) SampleBRDFCos(frame core.Frame, wo core.Vec3, uv core.Vec2, s float64) BRDFSample {
	mustBeResolved(l)
	return sampleCosineLobe(l, frame, wo, uv)
}

// SampleReflection returns an invalid sample: Lambert has no reflection lobe
func (l *Lambert) SampleReflection(frame core.Frame, wo core.Vec3) BRDFSample {
	mustBeResolved(l)
	return BRDFSample{}
}

// SampleBlurryReflection returns an invalid sample: Lambert has no reflection lobe
func (l *Lambert) SampleBlurryReflection(frame core.Frame, wo core.Vec3, uv core.Vec2) BRDFSample {
	mustBeResolved(l)
	return BRDFSample{}
}

// DisplayColor returns the diffuse color
func (l *Lambert) DisplayColor() core.Vec3 {
	return l.Diffuse
}
