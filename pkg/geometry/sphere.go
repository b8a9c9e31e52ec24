package geometry

import (
	"math"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/material"
)

// Sphere is a sphere defined by center and radius
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests ray-sphere intersection, returning the closest root in range
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*SurfaceHit, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Nearest root within range, falling back to the far root
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitPoint := ray.At(root)
	normal := hitPoint.Subtract(s.Center).Multiply(1.0 / s.Radius)

	// Spherical texture coordinates
	theta := math.Acos(-normal.Y)
	phi := math.Atan2(-normal.Z, normal.X) + math.Pi
	uv := core.NewVec2(phi/(2*math.Pi), theta/math.Pi)

	return &SurfaceHit{
		T:        root,
		Frame:    core.NewFrameFromZ(hitPoint, normal),
		UV:       uv,
		Material: s.Material,
	}, true
}

// BoundingBox returns the box enclosing the sphere
func (s *Sphere) BoundingBox() AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
