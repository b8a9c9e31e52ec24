package material

import (
	"math"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/texture"
)

// Phong is a diffuse material with a normalized specular lobe and an optional
// mirror reflection component
type Phong struct {
	normalMapped
	Diffuse    core.Vec3
	Specular   core.Vec3
	Exponent   float64   // Specular exponent, must be positive
	Reflection core.Vec3 // Mirror reflection color, zero disables reflection
	BlurSize   float64   // Disc radius for glossy reflection, 0 = perfect mirror

	// UseReflected selects the lobe centering convention: cosine against the
	// mirror-reflected outgoing direction when true, against the half vector
	// otherwise. Both are valid energy normalizations.
	UseReflected bool

	DiffuseTexture    *texture.Texture
	SpecularTexture   *texture.Texture
	ExponentTexture   *texture.Texture
	ReflectionTexture *texture.Texture
}

// NewPhong creates a Phong material with the given diffuse, specular and exponent
func NewPhong(diffuse, specular core.Vec3, exponent float64) *Phong {
	return &Phong{
		Diffuse:  diffuse,
		Specular: specular,
		Exponent: exponent,
	}
}

// HasTextures reports whether any of the four coefficient texture slots is bound
func (p *Phong) HasTextures() bool {
	return p.DiffuseTexture != nil || p.SpecularTexture != nil ||
		p.ExponentTexture != nil || p.ReflectionTexture != nil
}

// ResolveTextures returns a texture-free copy carrying the base coefficients
func (p *Phong) ResolveTextures(uv core.Vec2) Material {
	return &Phong{
		Diffuse:      p.Diffuse,
		Specular:     p.Specular,
		Exponent:     p.Exponent,
		Reflection:   p.Reflection,
		BlurSize:     p.BlurSize,
		UseReflected: p.UseReflected,
	}
}

// DiffuseAlbedo returns the diffuse reflectance color
func (p *Phong) DiffuseAlbedo() core.Vec3 {
	mustBeResolved(p)
	return p.Diffuse
}

// Emit returns zero: Phong surfaces do not emit
func (p *Phong) Emit(frame core.Frame, wo core.Vec3) core.Vec3 {
	mustBeResolved(p)
	return core.Vec3{}
}

// BRDFCos evaluates (diffuse/π + normalized specular lobe) × cosine.
// The lobe normalization (n+8)/(8π) keeps the material energy-conserving
// across exponents.
func (p *Phong) BRDFCos(frame core.Frame, wi, wo core.Vec3) core.Vec3 {
	mustBeResolved(p)
	if wi.Dot(frame.Z) <= 0 || wo.Dot(frame.Z) <= 0 {
		return core.Vec3{}
	}

	var lobeCos float64
	if p.UseReflected {
		wr := reflect(wi.Negate(), frame.Z)
		lobeCos = wo.Dot(wr)
	} else {
		wh := wi.Add(wo).Normalize()
		lobeCos = frame.Z.Dot(wh)
	}

	specular := p.Specular.Multiply(
		(p.Exponent + 8) * math.Pow(math.Max(lobeCos, 0), p.Exponent) / (8 * math.Pi))
	diffuse := p.Diffuse.Multiply(1 / math.Pi)

	return diffuse.Add(specular).Multiply(math.Abs(wi.Dot(frame.Z)))
}

// SampleBRDFCos draws a cosine-weighted incoming direction
func (p *Phong) SampleBRDFCos(frame core.Frame, wo core.Vec3, uv core.Vec2, s float64) BRDFSample {
	mustBeResolved(p)
	return sampleCosineLobe(p, frame, wo, uv)
}

// SampleReflection returns the perfect mirror reflection of wo with the
// material's reflection color and pdf 1
func (p *Phong) SampleReflection(frame core.Frame, wo core.Vec3) BRDFSample {
	mustBeResolved(p)
	if wo.Dot(frame.Z) <= 0 {
		return BRDFSample{}
	}
	return BRDFSample{
		BRDFCos:   p.Reflection,
		Direction: reflect(wo.Negate(), frame.Z),
		PDF:       1,
	}
}

// SampleBlurryReflection perturbs the mirror direction within a disc of radius
// BlurSize built from two vectors orthogonal to the reflected direction. The
// 1/blur² pdf is a relative weight, not a normalized solid-angle density.
func (p *Phong) SampleBlurryReflection(frame core.Frame, wo core.Vec3, uv core.Vec2) BRDFSample {
	mustBeResolved(p)
	if wo.Dot(frame.Z) <= 0 {
		return BRDFSample{}
	}

	wi := reflect(wo.Negate(), frame.Z)
	if p.BlurSize <= 0 {
		// Zero blur degenerates to a perfect mirror
		return p.SampleReflection(frame, wo)
	}

	u := wi.Cross(wo).Normalize()
	v := wi.Cross(u).Normalize()
	direction := wi.
		Add(u.Multiply((0.5 - uv.X) * p.BlurSize)).
		Add(v.Multiply((0.5 - uv.Y) * p.BlurSize)).
		Normalize()

	return BRDFSample{
		BRDFCos:   p.Reflection,
		Direction: direction,
		PDF:       1 / (p.BlurSize * p.BlurSize),
	}
}

// DisplayColor returns the diffuse color
func (p *Phong) DisplayColor() core.Vec3 {
	return p.Diffuse
}
