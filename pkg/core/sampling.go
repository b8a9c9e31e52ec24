package core

import (
	"math"
	"math/rand"
)

// Sampler provides uniform random numbers for rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
// Each concurrent worker must own its own Sampler instance.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleLocalCosineHemisphere draws a cosine-weighted direction in the local
// hemisphere around +Z and returns it with its pdf (cosθ/π)
func SampleLocalCosineHemisphere(sample Vec2) (Vec3, float64) {
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	zCoord := math.Sqrt(1.0 - z)

	return NewVec3(x, y, zCoord), zCoord / math.Pi
}

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around the given world-space normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	local, _ := SampleLocalCosineHemisphere(sample)
	return NewFrameFromZ(Vec3{}, normal).TransformDirection(local)
}

// SamplePointInUnitDisk generates a random point in a unit disk using concentric
// mapping, avoiding rejection sampling. Used for depth-of-field lens jitter.
func SamplePointInUnitDisk(sample Vec2) Vec3 {
	// Map sample to [-1,1]² and handle degeneracy at the origin
	uOffset := NewVec2(2*sample.X-1, 2*sample.Y-1)
	if uOffset.X == 0 && uOffset.Y == 0 {
		return NewVec3(0, 0, 0)
	}

	var theta, r float64
	if math.Abs(uOffset.X) > math.Abs(uOffset.Y) {
		r = uOffset.X
		theta = math.Pi / 4 * (uOffset.Y / uOffset.X)
	} else {
		r = uOffset.Y
		theta = math.Pi/2 - math.Pi/4*(uOffset.X/uOffset.Y)
	}

	return NewVec3(r*math.Cos(theta), r*math.Sin(theta), 0)
}
