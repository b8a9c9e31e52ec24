package core

import "math"

// Frame is an oriented orthonormal basis at a point in world space.
// Z is the frame's forward axis: the outward normal for shading frames,
// the emission direction for lights.
type Frame struct {
	Origin  Vec3
	X, Y, Z Vec3
}

// IdentityFrame returns the world frame at the origin
func IdentityFrame() Frame {
	return Frame{
		X: NewVec3(1, 0, 0),
		Y: NewVec3(0, 1, 0),
		Z: NewVec3(0, 0, 1),
	}
}

// NewFrameAt returns the identity frame translated to the given origin
func NewFrameAt(origin Vec3) Frame {
	f := IdentityFrame()
	f.Origin = origin
	return f
}

// NewFrameFromZ builds a frame at origin whose Z axis is the given direction,
// with tangent axes chosen deterministically
func NewFrameFromZ(origin, z Vec3) Frame {
	z = z.Normalize()

	// Pick a helper axis that is not nearly parallel to z
	var nt Vec3
	if math.Abs(z.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	x := nt.Cross(z).Normalize()
	y := z.Cross(x)

	return Frame{Origin: origin, X: x, Y: y, Z: z}
}

// LookAtFrame builds a frame at eye whose Z axis points toward center,
// using up to resolve the remaining axes via orthonormalization
func LookAtFrame(eye, center, up Vec3) Frame {
	z := center.Subtract(eye).Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)
	return Frame{Origin: eye, X: x, Y: y, Z: z}
}

// TransformPoint transforms a point from frame-local to world coordinates
func (f Frame) TransformPoint(p Vec3) Vec3 {
	return f.Origin.
		Add(f.X.Multiply(p.X)).
		Add(f.Y.Multiply(p.Y)).
		Add(f.Z.Multiply(p.Z))
}

// TransformPointInverse transforms a world-space point into frame-local coordinates
func (f Frame) TransformPointInverse(p Vec3) Vec3 {
	d := p.Subtract(f.Origin)
	return Vec3{X: d.Dot(f.X), Y: d.Dot(f.Y), Z: d.Dot(f.Z)}
}

// TransformDirection transforms a direction from frame-local to world coordinates
func (f Frame) TransformDirection(d Vec3) Vec3 {
	return f.X.Multiply(d.X).
		Add(f.Y.Multiply(d.Y)).
		Add(f.Z.Multiply(d.Z))
}

// TransformDirectionInverse transforms a world-space direction into frame-local coordinates
func (f Frame) TransformDirectionInverse(d Vec3) Vec3 {
	return Vec3{X: d.Dot(f.X), Y: d.Dot(f.Y), Z: d.Dot(f.Z)}
}

// FaceForward flips the frame so its Z axis opposes the incoming direction.
// X is flipped with Z to keep the basis right-handed.
func (f Frame) FaceForward(incoming Vec3) Frame {
	if incoming.Dot(f.Z) <= 0 {
		return f
	}
	f.X = f.X.Negate()
	f.Z = f.Z.Negate()
	return f
}
