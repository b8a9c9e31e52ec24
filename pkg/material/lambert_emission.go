package material

import (
	"math"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/texture"
)

// LambertEmission is a diffuse material that also emits light, used as the
// surface material of area lights
type LambertEmission struct {
	normalMapped
	Emission        core.Vec3
	Diffuse         core.Vec3
	EmissionTexture *texture.Texture
	DiffuseTexture  *texture.Texture
}

// NewLambertEmission creates an emissive diffuse material
func NewLambertEmission(emission, diffuse core.Vec3) *LambertEmission {
	return &LambertEmission{Emission: emission, Diffuse: diffuse}
}

// HasTextures reports whether the emission or diffuse texture slot is bound
func (e *LambertEmission) HasTextures() bool {
	return e.EmissionTexture != nil || e.DiffuseTexture != nil
}

// ResolveTextures returns a texture-free copy carrying the base coefficients
func (e *LambertEmission) ResolveTextures(uv core.Vec2) Material {
	return &LambertEmission{Emission: e.Emission, Diffuse: e.Diffuse}
}

// DiffuseAlbedo returns the diffuse reflectance color
func (e *LambertEmission) DiffuseAlbedo() core.Vec3 {
	mustBeResolved(e)
	return e.Diffuse
}

// Emit returns the emission color when wo lies in the hemisphere of the
// shading normal, zero otherwise
func (e *LambertEmission) Emit(frame core.Frame, wo core.Vec3) core.Vec3 {
	mustBeResolved(e)
	if wo.Dot(frame.Z) <= 0 {
		return core.Vec3{}
	}
	return e.Emission
}

// BRDFCos evaluates diffuse/π × cosine
func (e *LambertEmission) BRDFCos(frame core.Frame, wi, wo core.Vec3) core.Vec3 {
	mustBeResolved(e)
	if wi.Dot(frame.Z) <= 0 || wo.Dot(frame.Z) <= 0 {
		return core.Vec3{}
	}
	return e.Diffuse.Multiply(math.Abs(wi.Dot(frame.Z)) / math.Pi)
}

// SampleBRDFCos draws a cosine-weighted incoming direction
func (e *LambertEmission) SampleBRDFCos(frame core.Frame, wo core.Vec3, uv core.Vec2, s float64) BRDFSample {
	mustBeResolved(e)
	return sampleCosineLobe(e, frame, wo, uv)
}

// SampleReflection returns an invalid sample: emissive surfaces have no reflection lobe
func (e *LambertEmission) SampleReflection(frame core.Frame, wo core.Vec3) BRDFSample {
	mustBeResolved(e)
	return BRDFSample{}
}

// SampleBlurryReflection returns an invalid sample: emissive surfaces have no reflection lobe
func (e *LambertEmission) SampleBlurryReflection(frame core.Frame, wo core.Vec3, uv core.Vec2) BRDFSample {
	mustBeResolved(e)
	return BRDFSample{}
}

// DisplayColor returns the emission color
func (e *LambertEmission) DisplayColor() core.Vec3 {
	return e.Emission
}
