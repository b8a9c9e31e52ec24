package scene

import (
	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/geometry"
	"github.com/amonkey/go-distribution-raytracer/pkg/integrator"
	"github.com/amonkey/go-distribution-raytracer/pkg/material"
	"github.com/amonkey/go-distribution-raytracer/pkg/renderer"
)

// NewCornellScene creates a Cornell box lit by a ceiling area light, with a
// mirrored and a diffuse sphere inside
func NewCornellScene(width, height int) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(278, 278, -800),
		LookAt: core.NewVec3(278, 278, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  width,
		Height: height,
		VFov:   40,
	}

	config := integrator.Config{
		Background:     core.Vec3{},
		Ambient:        core.NewVec3(0.02, 0.02, 0.02),
		Samples:        64,
		AmbientSamples: 4,
		Shadows:        true,
		Reflections:    true,
		MaxDepth:       3,
	}

	s := New(cameraConfig, config)

	white := material.NewLambert(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambert(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambert(core.NewVec3(0.12, 0.45, 0.15))

	const boxSize = 555.0

	// Floor, normal +Y
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, -boxSize),
		white,
	))
	// Ceiling, normal -Y
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white,
	))
	// Back wall, normal -Z toward the camera
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		white,
	))
	// Left wall, normal +X
	s.AddShape(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, boxSize),
		red,
	))
	// Right wall, normal -X
	s.AddShape(geometry.NewQuad(
		core.NewVec3(boxSize, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, -boxSize),
		green,
	))

	// Ceiling light, slightly below the ceiling, emitting downward
	s.AddAreaLight(
		core.NewVec3(213, boxSize-1, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		core.NewVec3(15, 15, 15),
		9,
	)

	// Mirrored sphere
	mirror := material.NewPhong(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.3, 0.3, 0.3), 50)
	mirror.Reflection = core.NewVec3(0.8, 0.8, 0.8)
	s.AddShape(geometry.NewSphere(core.NewVec3(190, 90, 190), 90, mirror))

	// Diffuse sphere
	s.AddShape(geometry.NewSphere(core.NewVec3(400, 90, 350), 90, white))

	return s
}
