package core

import (
	"math"
	"testing"
)

const frameTolerance = 1e-12

func assertVec3Near(t *testing.T, name string, got, expected Vec3, tolerance float64) {
	t.Helper()
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("%s: got %v, expected %v", name, got, expected)
	}
}

func TestLookAtFrame_Orthonormal(t *testing.T) {
	f := LookAtFrame(NewVec3(1, 2, 3), NewVec3(4, 0, -1), NewVec3(0, 1, 0))

	for name, axis := range map[string]Vec3{"X": f.X, "Y": f.Y, "Z": f.Z} {
		if math.Abs(axis.Length()-1.0) > frameTolerance {
			t.Errorf("axis %s not unit length: %f", name, axis.Length())
		}
	}

	if math.Abs(f.X.Dot(f.Y)) > frameTolerance ||
		math.Abs(f.Y.Dot(f.Z)) > frameTolerance ||
		math.Abs(f.X.Dot(f.Z)) > frameTolerance {
		t.Error("axes not mutually orthogonal")
	}

	// Right-handed: X × Y = Z
	assertVec3Near(t, "handedness", f.X.Cross(f.Y), f.Z, frameTolerance)

	// Forward axis points from eye toward center
	expected := NewVec3(4, 0, -1).Subtract(NewVec3(1, 2, 3)).Normalize()
	assertVec3Near(t, "forward axis", f.Z, expected, frameTolerance)
}

func TestFrame_PointRoundTrip(t *testing.T) {
	f := LookAtFrame(NewVec3(5, -2, 1), NewVec3(0, 0, 0), NewVec3(0, 1, 0))

	p := NewVec3(1.5, -0.25, 3)
	local := f.TransformPointInverse(p)
	back := f.TransformPoint(local)
	assertVec3Near(t, "point round trip", back, p, 1e-9)

	d := NewVec3(0.3, 0.6, -0.9)
	localDir := f.TransformDirectionInverse(d)
	backDir := f.TransformDirection(localDir)
	assertVec3Near(t, "direction round trip", backDir, d, 1e-9)
}

func TestFrame_FaceForward(t *testing.T) {
	f := NewFrameFromZ(Vec3{}, NewVec3(0, 0, 1))

	// Incoming ray travelling -Z already opposes the normal: unchanged
	same := f.FaceForward(NewVec3(0, 0, -1))
	assertVec3Near(t, "unchanged normal", same.Z, f.Z, frameTolerance)

	// Incoming ray travelling +Z: frame must flip to face it
	flipped := f.FaceForward(NewVec3(0, 0, 1))
	assertVec3Near(t, "flipped normal", flipped.Z, f.Z.Negate(), frameTolerance)
	assertVec3Near(t, "flipped handedness", flipped.X.Cross(flipped.Y), flipped.Z, frameTolerance)
}

func TestNewFrameFromZ_AxisAligned(t *testing.T) {
	f := NewFrameFromZ(Vec3{}, NewVec3(0, 0, 1))
	assertVec3Near(t, "Z axis", f.Z, NewVec3(0, 0, 1), frameTolerance)
	assertVec3Near(t, "handedness", f.X.Cross(f.Y), f.Z, frameTolerance)
}
