package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleLocalCosineHemisphere_PDFMatchesCosine(t *testing.T) {
	const tolerance = 1e-12
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		dir, pdf := SampleLocalCosineHemisphere(sampler.Get2D())

		if dir.Z < 0 {
			t.Fatalf("direction below hemisphere: %v", dir)
		}
		if math.Abs(dir.Length()-1.0) > 1e-9 {
			t.Fatalf("direction not unit length: %f", dir.Length())
		}

		expectedPDF := dir.Z / math.Pi
		if math.Abs(pdf-expectedPDF) > tolerance {
			t.Fatalf("pdf mismatch: got %f, expected %f", pdf, expectedPDF)
		}
	}
}

func TestSampleCosineHemisphere_StaysAboveNormal(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))
	normal := NewVec3(1, 2, -1).Normalize()

	for i := 0; i < 1000; i++ {
		dir := SampleCosineHemisphere(normal, sampler.Get2D())
		if dir.Dot(normal) < 0 {
			t.Fatalf("sampled direction below surface: %v", dir)
		}
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(11)))

	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 {
			t.Fatalf("disk point has nonzero Z: %v", p)
		}
		if p.Length() > 1.0+1e-12 {
			t.Fatalf("disk point outside unit disk: %v (r=%f)", p, p.Length())
		}
	}

	// Degenerate center sample maps to the origin
	if p := SamplePointInUnitDisk(NewVec2(0.5, 0.5)); !p.IsZero() {
		t.Errorf("center sample: got %v, expected origin", p)
	}
}
