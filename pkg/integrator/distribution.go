package integrator

import (
	"math"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/lights"
	"github.com/amonkey/go-distribution-raytracer/pkg/material"
)

// Distribution is the distribution raytracing integrator
type Distribution struct {
	config Config
}

// NewDistribution creates a distribution integrator with the given options
func NewDistribution(config Config) *Distribution {
	return &Distribution{config: config}
}

// RayColor computes the radiance arriving along ray. Recursion terminates on
// a missed intersection or when depth reaches the configured maximum.
func (d *Distribution) RayColor(ray core.Ray, scene Scene, sampler core.Sampler, depth int) core.Vec3 {
	hit, ok := scene.Intersect(ray)
	if !ok {
		return d.config.Background
	}

	frame := hit.Frame
	if d.config.DoubleSided {
		frame = frame.FaceForward(ray.Direction)
	}
	wo := ray.Direction.Negate().Normalize()

	resolved := hit.Material.ResolveTextures(hit.UV)
	frame = resolved.ShadingFrame(frame, hit.UV)

	var radiance core.Vec3

	// Ambient term, occlusion-scaled when ambient sampling is enabled.
	// Occlusion rays use the geometric frame, not the flipped shading frame.
	if d.config.AmbientSamples > 0 {
		visible := 0
		for i := 0; i < d.config.AmbientSamples; i++ {
			local := core.NewVec3(
				0.5-sampler.Get1D(),
				0.5-sampler.Get1D(),
				math.Abs(0.5-sampler.Get1D()),
			).Normalize()
			direction := hit.Frame.TransformDirection(local)
			if !scene.Occluded(hit.Frame.Origin, direction, core.Infinity) {
				visible++
			}
		}
		occlusion := float64(visible) / float64(d.config.AmbientSamples)
		radiance = radiance.Add(d.config.Ambient.Multiply(occlusion).MultiplyVec(resolved.DiffuseAlbedo()))
	} else {
		radiance = radiance.Add(d.config.Ambient.MultiplyVec(resolved.DiffuseAlbedo()))
	}

	// Emission
	radiance = radiance.Add(resolved.Emit(frame, wo))

	// Direct lighting
	group := scene.Lights()
	if d.config.CameraLights {
		group = scene.CameraLights()
	}
	for _, light := range group.Lights() {
		radiance = radiance.Add(d.directLight(light, resolved, frame, wo, scene, sampler))
	}

	// Specular recursion
	if d.config.Reflections && depth < d.config.MaxDepth {
		bs := resolved.SampleReflection(frame, wo)
		if bs.Valid() {
			reflRay := core.NewRay(frame.Origin, bs.Direction)
			recursive := d.RayColor(reflRay, scene, sampler, depth+1)
			radiance = radiance.Add(recursive.MultiplyVec(bs.BRDFCos))
		}
	}

	return radiance
}

// directLight estimates one light's contribution. A single stochastic shadow
// sample is drawn and reused across the light's shadow-sample-count
// iterations, trading variance for fewer random draws.
func (d *Distribution) directLight(light lights.Light, mat material.Material, frame core.Frame, wo core.Vec3, scene Scene, sampler core.Sampler) core.Vec3 {
	ss := light.RandomShadowSample(frame.Origin, sampler.Get1D(), sampler.Get1D())
	count := light.ShadowSampleCount()

	var total core.Vec3
	for i := 0; i < count; i++ {
		if ss.Radiance.IsZero() {
			continue
		}
		contribution := ss.Radiance.MultiplyVec(mat.BRDFCos(frame, ss.Direction, wo)).Multiply(1 / ss.PDF)
		if contribution.IsZero() {
			continue
		}
		if d.config.Shadows && scene.Occluded(frame.Origin, ss.Direction, ss.Distance) {
			continue
		}
		total = total.Add(contribution.Multiply(1 / float64(count)))
	}
	return total
}
