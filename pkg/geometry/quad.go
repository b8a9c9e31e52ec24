package geometry

import (
	"math"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/material"
)

// Quad is a rectangular surface defined by a corner and two edge vectors.
// It satisfies lights.SampleableShape so area lights can jitter samples over
// its extent.
type Quad struct {
	Corner   core.Vec3
	U        core.Vec3 // First edge vector
	V        core.Vec3 // Second edge vector
	Normal   core.Vec3 // Unit normal, U × V direction
	Material material.Material

	d float64   // Plane equation constant: normal · corner
	w core.Vec3 // Cached vector for barycentric coordinates
}

// NewQuad creates a quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		d:        normal.Dot(corner),
		w:        normal.Multiply(1.0 / normal.Dot(cross)),
	}
}

// Width returns the length of the first edge
func (q *Quad) Width() float64 {
	return q.U.Length()
}

// Height returns the length of the second edge
func (q *Quad) Height() float64 {
	return q.V.Length()
}

// Area returns the quad's surface area |U × V|
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}

// CenterFrame returns a frame at the quad's center with Z along the normal
// and X along the first edge, suitable for placing an area light
func (q *Quad) CenterFrame() core.Frame {
	origin := q.Corner.Add(q.U.Multiply(0.5)).Add(q.V.Multiply(0.5))
	x := q.U.Normalize()
	return core.Frame{
		Origin: origin,
		X:      x,
		Y:      q.Normal.Cross(x),
		Z:      q.Normal,
	}
}

// Hit tests ray-quad intersection. The hit frame's X axis follows the first
// edge and UV are the barycentric edge coordinates in [0,1].
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*SurfaceHit, bool) {
	denominator := ray.Direction.Dot(q.Normal)
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	x := q.U.Normalize()
	return &SurfaceHit{
		T: t,
		Frame: core.Frame{
			Origin: hitPoint,
			X:      x,
			Y:      q.Normal.Cross(x),
			Z:      q.Normal,
		},
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}, true
}

// BoundingBox returns the box over all four corners, slightly expanded so
// axis-aligned quads keep nonzero thickness
func (q *Quad) BoundingBox() AABB {
	box := NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
	return box.Expand(1e-4)
}
