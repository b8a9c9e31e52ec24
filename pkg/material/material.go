// Package material implements the surface reflectance model: Lambert, Phong
// and emissive-Lambert variants with evaluation and importance-sampling
// routines used by the integrator.
package material

import (
	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/texture"
)

// Material is the closed set of surface reflectance variants. Evaluation and
// sampling methods require a texture-free material: call ResolveTextures on
// the scene material first, and treat a panic from these methods as a usage
// error, not a render-time condition.
type Material interface {
	// HasTextures reports whether any texture slot relevant to this variant is bound
	HasTextures() bool

	// ResolveTextures returns a texture-free copy carrying the coefficients
	// that apply at the given texture coordinate
	ResolveTextures(uv core.Vec2) Material

	// ShadingFrame returns the shading frame after normal perturbation
	ShadingFrame(frame core.Frame, uv core.Vec2) core.Frame

	// DiffuseAlbedo returns the diffuse reflectance color
	DiffuseAlbedo() core.Vec3

	// Emit evaluates emitted radiance toward wo, zero for non-emissive variants
	Emit(frame core.Frame, wo core.Vec3) core.Vec3

	// BRDFCos evaluates BRDF × cosine for an incoming/outgoing direction pair,
	// zero if either direction lies at or below the shading normal
	BRDFCos(frame core.Frame, wi, wo core.Vec3) core.Vec3

	// SampleBRDFCos draws an incoming direction by cosine-weighted hemisphere
	// sampling. s is reserved for lobe selection and is currently unused.
	SampleBRDFCos(frame core.Frame, wo core.Vec3, uv core.Vec2, s float64) BRDFSample

	// SampleReflection returns the perfect mirror reflection sample,
	// invalid for variants without a reflection lobe
	SampleReflection(frame core.Frame, wo core.Vec3) BRDFSample

	// SampleBlurryReflection perturbs the mirror direction within a disc
	// proportional to the material's blur size
	SampleBlurryReflection(frame core.Frame, wo core.Vec3, uv core.Vec2) BRDFSample

	// DisplayColor returns a single representative color for non-integrating contexts
	DisplayColor() core.Vec3
}

// BRDFSample is a stochastically drawn incoming direction with its weight
type BRDFSample struct {
	BRDFCos   core.Vec3 // BRDF × cosine at the sampled direction
	Direction core.Vec3 // Sampled incoming direction, world space
	PDF       float64   // Probability density of the draw
}

// Valid reports whether the sample carries any energy
func (s BRDFSample) Valid() bool {
	return !s.BRDFCos.IsZero()
}

// normalMapped carries the optional normal-perturbation texture shared by all
// variants. The perturbation itself is not evaluated: ShadingFrame returns the
// geometric frame unchanged.
type normalMapped struct {
	NormalTexture *texture.Texture
}

// ShadingFrame returns the shading frame for a surface point
func (n *normalMapped) ShadingFrame(frame core.Frame, uv core.Vec2) core.Frame {
	return frame
}

// mustBeResolved panics if the material still carries bound textures.
// Evaluation routines operate only on resolved instances.
func mustBeResolved(m Material) {
	if m.HasTextures() {
		panic("material: evaluation requires a texture-free material; call ResolveTextures first")
	}
}

// reflect mirrors v across the plane with normal n: v - 2(v·n)n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// sampleCosineLobe draws a cosine-weighted incoming direction in the shading
// frame and evaluates the material there. Shared by all non-specular variants.
func sampleCosineLobe(m Material, frame core.Frame, wo core.Vec3, uv core.Vec2) BRDFSample {
	if wo.Dot(frame.Z) <= 0 {
		return BRDFSample{}
	}

	local, pdf := core.SampleLocalCosineHemisphere(uv)
	wi := frame.TransformDirection(local)

	return BRDFSample{
		BRDFCos:   m.BRDFCos(frame, wi, wo),
		Direction: wi,
		PDF:       pdf,
	}
}
