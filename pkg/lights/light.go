// Package lights implements the light model: point, directional, area and
// environment emitters sampled by the integrator for direct lighting, plus
// ordered light groups.
package lights

import (
	"github.com/amonkey/go-distribution-raytracer/pkg/core"
)

// Light is the closed set of emitter variants. All directions and positions in
// samples are world space; a light's placement comes from its oriented frame.
type Light interface {
	// ShadowSampleCount returns the number of shadow rays to cast for this
	// light when estimating direct lighting
	ShadowSampleCount() int

	// ShadowSample returns the deterministic sample toward the light's
	// nominal position or direction from the given shading point
	ShadowSample(point core.Vec3) ShadowSample

	// RandomShadowSample draws a stochastic sample for soft shadows using two
	// uniform random numbers. Variants without finite extent delegate to the
	// deterministic sample.
	RandomShadowSample(point core.Vec3, u, v float64) ShadowSample

	// SampleBackground returns the radiance contributed when a ray escapes
	// the scene along the given direction, zero for all non-environment
	// variants
	SampleBackground(direction core.Vec3) core.Vec3

	// InitSampling rebuilds importance-sampling state. A no-op for variants
	// that carry none; calling it repeatedly never leaks previous state.
	InitSampling()

	// LookAt orients the light's frame so its forward axis points from eye
	// toward center
	LookAt(eye, center, up core.Vec3)

	// Frame returns the light's placement frame
	Frame() core.Frame
}

// ShadowSample is a stochastically or deterministically drawn direct-lighting
// sample toward a light
type ShadowSample struct {
	Radiance  core.Vec3 // Incident radiance along Direction
	Direction core.Vec3 // Unit direction from the shading point toward the light
	Distance  float64   // Distance to the light, core.Infinity for directional/environment
	PDF       float64   // Probability density of the draw
}

// SampleableShape provides the local extent an area light jitters its samples
// over. Implemented by geometry.Quad.
type SampleableShape interface {
	Width() float64
	Height() float64
	Area() float64
}

// lightFrame carries the placement frame shared by all variants
type lightFrame struct {
	frame core.Frame
}

// Frame returns the light's placement frame
func (l *lightFrame) Frame() core.Frame {
	return l.frame
}

// SetFrame replaces the light's placement frame
func (l *lightFrame) SetFrame(frame core.Frame) {
	l.frame = frame
}

// LookAt orients the frame at eye with the forward axis toward center,
// orthonormalizing up into the remaining basis vectors
func (l *lightFrame) LookAt(eye, center, up core.Vec3) {
	l.frame = core.LookAtFrame(eye, center, up)
}

// Group is an ordered collection of lights. Groups do not own their lights:
// the same light may appear in several groups, such as a scene group and a
// camera-lights group.
type Group struct {
	lights []Light
}

// NewGroup creates a group over the given lights
func NewGroup(lights ...Light) *Group {
	return &Group{lights: lights}
}

// Add appends a light to the group
func (g *Group) Add(light Light) {
	g.lights = append(g.lights, light)
}

// Lights returns the group's lights in insertion order
func (g *Group) Lights() []Light {
	return g.lights
}

// Len returns the number of lights in the group
func (g *Group) Len() int {
	return len(g.lights)
}

// InitSampling initializes importance sampling on every light in the group
func (g *Group) InitSampling() {
	for _, light := range g.lights {
		light.InitSampling()
	}
}
