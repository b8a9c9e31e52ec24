package scene

import (
	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/geometry"
	"github.com/amonkey/go-distribution-raytracer/pkg/integrator"
	"github.com/amonkey/go-distribution-raytracer/pkg/lights"
	"github.com/amonkey/go-distribution-raytracer/pkg/material"
	"github.com/amonkey/go-distribution-raytracer/pkg/renderer"
)

// NewDefaultScene creates an open scene: spheres on a ground plane under a
// point light, a directional sun and an environment dome, with a shallow
// depth of field
func NewDefaultScene(width, height int) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 2, 6),
		LookAt:        core.NewVec3(0, 1, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         width,
		Height:        height,
		VFov:          35,
		Aperture:      0.05,
		FocusDistance: 0, // Focus on the look-at point
	}

	config := integrator.Config{
		Background:     core.NewVec3(0.15, 0.18, 0.25),
		Ambient:        core.NewVec3(0.08, 0.08, 0.08),
		Samples:        32,
		AmbientSamples: 4,
		Shadows:        true,
		Reflections:    true,
		MaxDepth:       2,
	}

	s := New(cameraConfig, config)

	ground := material.NewLambert(core.NewVec3(0.6, 0.6, 0.6))
	s.AddShape(NewGroundQuad(core.NewVec3(0, 0, 0), 100, ground))

	// Shiny center sphere. Reflections render as perfect mirrors, so no blur
	// size is set.
	shiny := material.NewPhong(core.NewVec3(0.2, 0.25, 0.5), core.NewVec3(0.5, 0.5, 0.5), 60)
	shiny.Reflection = core.NewVec3(0.4, 0.4, 0.4)
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, shiny))

	// Matte companions
	s.AddShape(geometry.NewSphere(core.NewVec3(-2.2, 0.7, -0.5),
		0.7, material.NewLambert(core.NewVec3(0.8, 0.3, 0.25))))
	s.AddShape(geometry.NewSphere(core.NewVec3(2.1, 0.5, 0.8),
		0.5, material.NewLambert(core.NewVec3(0.3, 0.7, 0.3))))

	// Key light
	s.SceneLights.Add(lights.NewPointLight(core.NewVec3(40, 40, 40), core.NewVec3(4, 6, 4)))

	// Sun
	sun := lights.NewDirectionalLight(core.NewVec3(0.6, 0.55, 0.45), core.NewVec3(-1, -2, -1))
	s.SceneLights.Add(sun)

	// Sky dome
	sky := lights.NewEnvironmentLight(core.NewVec3(0.1, 0.12, 0.18), 4)
	s.SceneLights.Add(sky)

	// Headlamp group for camera-light preview renders
	s.CamLights.Add(lights.NewPointLight(core.NewVec3(30, 30, 30), cameraConfig.Center))

	return s
}
