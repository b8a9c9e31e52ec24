// Package geometry implements the intersectable surfaces and the BVH
// acceleration structure used for first-hit and occlusion queries.
package geometry

import (
	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/material"
)

// Shape is an intersectable surface
type Shape interface {
	// Hit returns the closest intersection within (tMin, tMax), if any
	Hit(ray core.Ray, tMin, tMax float64) (*SurfaceHit, bool)

	// BoundingBox returns an axis-aligned box enclosing the shape
	BoundingBox() AABB
}

// SurfaceHit describes a ray-surface intersection: the shading frame is
// positioned at the hit point with Z along the geometric normal.
type SurfaceHit struct {
	T        float64
	Frame    core.Frame
	UV       core.Vec2
	Material material.Material
}
