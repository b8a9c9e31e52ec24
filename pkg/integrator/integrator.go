// Package integrator implements the distribution raytracing radiance
// estimate: stochastic ambient occlusion, direct lighting with soft shadows
// and bounded mirror recursion.
package integrator

import (
	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/geometry"
	"github.com/amonkey/go-distribution-raytracer/pkg/lights"
)

// Scene is what the integrator needs from a scene: intersection queries and
// the light groups
type Scene interface {
	// Intersect returns the first hit along the ray, if any
	Intersect(ray core.Ray) (*geometry.SurfaceHit, bool)

	// Occluded reports whether any geometry blocks the segment from point
	// along direction up to distance
	Occluded(point, direction core.Vec3, distance float64) bool

	// Lights returns the scene's ordinary light group
	Lights() *lights.Group

	// CameraLights returns the camera-attached light group
	CameraLights() *lights.Group
}

// Integrator computes the radiance arriving along a camera ray
type Integrator interface {
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler, depth int) core.Vec3
}

// Config holds the per-render integration options
type Config struct {
	Background     core.Vec3 // Radiance for rays that escape the scene
	Ambient        core.Vec3 // Ambient radiance term
	Samples        int       // Per-pixel sample count, consumed by the render driver, not the estimate
	AmbientSamples int       // Ambient-occlusion rays per estimate, 0 disables occlusion
	Shadows        bool      // Gate direct lighting by visibility queries
	Reflections    bool      // Enable specular recursion
	MaxDepth       int       // Specular recursion bound
	CameraLights   bool      // Use the camera light group instead of scene lights
	DoubleSided    bool      // Flip shading frames to face the incoming ray
}

// DefaultConfig returns the options used by the demo scenes
func DefaultConfig() Config {
	return Config{
		Background:     core.NewVec3(0.05, 0.05, 0.05),
		Ambient:        core.NewVec3(0.05, 0.05, 0.05),
		Samples:        16,
		AmbientSamples: 4,
		Shadows:        true,
		Reflections:    true,
		MaxDepth:       2,
	}
}
