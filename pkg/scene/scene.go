// Package scene aggregates geometry, lights and a camera into the view the
// renderer and integrator consume, plus code-built demo scenes.
package scene

import (
	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/geometry"
	"github.com/amonkey/go-distribution-raytracer/pkg/integrator"
	"github.com/amonkey/go-distribution-raytracer/pkg/lights"
	"github.com/amonkey/go-distribution-raytracer/pkg/material"
	"github.com/amonkey/go-distribution-raytracer/pkg/renderer"
)

// Intersection epsilons: clip segment endpoints so surfaces never occlude
// themselves
const (
	hitEpsilon    = 1e-3
	shadowEpsilon = 1e-3
)

// Scene holds everything a render needs. Call Preprocess after construction
// and before rendering.
type Scene struct {
	Shapes       []geometry.Shape
	SceneLights  *lights.Group
	CamLights    *lights.Group
	CameraConfig renderer.CameraConfig
	Config       integrator.Config

	camera *renderer.Camera
	bvh    *geometry.BVH
}

// New creates an empty scene with the given camera and integrator options
func New(cameraConfig renderer.CameraConfig, config integrator.Config) *Scene {
	return &Scene{
		SceneLights:  lights.NewGroup(),
		CamLights:    lights.NewGroup(),
		CameraConfig: cameraConfig,
		Config:       config,
	}
}

// Preprocess builds the acceleration structure, the camera, and initializes
// light sampling on both groups. Must run before rendering and again after
// geometry changes.
func (s *Scene) Preprocess() {
	s.bvh = geometry.NewBVH(s.Shapes)
	s.camera = renderer.NewCamera(s.CameraConfig)
	s.SceneLights.InitSampling()
	s.CamLights.InitSampling()
}

// Intersect returns the first hit along the ray
func (s *Scene) Intersect(ray core.Ray) (*geometry.SurfaceHit, bool) {
	return s.bvh.Hit(ray, hitEpsilon, core.Infinity)
}

// Occluded reports whether geometry blocks the segment from point toward
// direction up to distance, with both endpoints epsilon-clipped
func (s *Scene) Occluded(point, direction core.Vec3, distance float64) bool {
	return s.bvh.Occluded(core.NewRay(point, direction), shadowEpsilon, distance-shadowEpsilon)
}

// Lights returns the scene light group
func (s *Scene) Lights() *lights.Group {
	return s.SceneLights
}

// CameraLights returns the camera-attached light group
func (s *Scene) CameraLights() *lights.Group {
	return s.CamLights
}

// Camera returns the camera built by Preprocess
func (s *Scene) Camera() *renderer.Camera {
	return s.camera
}

// AddShape appends a shape
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddAreaLight creates an emissive quad and the matching area light: the quad
// joins the scene geometry with an emissive surface material, the light joins
// the scene light group positioned at the quad's center
func (s *Scene) AddAreaLight(corner, u, v, intensity core.Vec3, shadowSamples int) *lights.AreaLight {
	surface := material.NewLambertEmission(intensity, core.Vec3{})
	quad := geometry.NewQuad(corner, u, v, surface)
	s.Shapes = append(s.Shapes, quad)

	light := lights.NewAreaLight(intensity, quad, quad.CenterFrame(), shadowSamples)
	s.SceneLights.Add(light)
	return light
}

// NewGroundQuad creates a large horizontal quad with normal +Y centered at
// the given point, standing in for an infinite ground plane
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z+size/2)
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, -size)
	return geometry.NewQuad(corner, u, v, mat)
}
