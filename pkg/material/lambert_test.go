package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/texture"
)

func upFrame() core.Frame {
	return core.NewFrameFromZ(core.Vec3{}, core.NewVec3(0, 0, 1))
}

func TestLambert_BRDFCos_ClosedForm(t *testing.T) {
	const tolerance = 1e-12
	diffuse := core.NewVec3(0.8, 0.6, 0.4)
	mat := NewLambert(diffuse)
	frame := upFrame()

	wo := core.NewVec3(0, 0, 1)
	wi := core.NewVec3(0, 1, 1).Normalize()

	got := mat.BRDFCos(frame, wi, wo)
	expected := diffuse.Multiply(wi.Dot(frame.Z) / math.Pi)

	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("BRDFCos: got %v, expected %v", got, expected)
	}
}

func TestLambert_BRDFCos_HemisphereGuard(t *testing.T) {
	mat := NewLambert(core.NewVec3(0.8, 0.8, 0.8))
	frame := upFrame()

	up := core.NewVec3(0, 0, 1)
	down := core.NewVec3(0, 0, -1)
	grazing := core.NewVec3(1, 0, 0)

	cases := []struct {
		name   string
		wi, wo core.Vec3
	}{
		{"incoming below", down, up},
		{"outgoing below", up, down},
		{"both below", down, down},
		{"incoming grazing", grazing, up},
	}
	for _, tc := range cases {
		if got := mat.BRDFCos(frame, tc.wi, tc.wo); !got.IsZero() {
			t.Errorf("%s: got %v, expected zero", tc.name, got)
		}
	}
}

func TestLambert_SampleBRDFCos(t *testing.T) {
	const tolerance = 1e-12
	mat := NewLambert(core.NewVec3(0.5, 0.5, 0.5))
	frame := upFrame()
	wo := core.NewVec3(0, 0, 1)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 500; i++ {
		bs := mat.SampleBRDFCos(frame, wo, sampler.Get2D(), sampler.Get1D())

		cosTheta := bs.Direction.Dot(frame.Z)
		if cosTheta < 0 {
			t.Fatalf("sampled direction below surface: %v", bs.Direction)
		}

		expectedPDF := cosTheta / math.Pi
		if math.Abs(bs.PDF-expectedPDF) > tolerance {
			t.Fatalf("pdf: got %f, expected %f", bs.PDF, expectedPDF)
		}

		expected := mat.BRDFCos(frame, bs.Direction, wo)
		if bs.BRDFCos != expected {
			t.Fatalf("brdfcos: got %v, expected %v", bs.BRDFCos, expected)
		}
	}

	// Outgoing below the surface yields an invalid sample
	if bs := mat.SampleBRDFCos(frame, core.NewVec3(0, 0, -1), core.NewVec2(0.5, 0.5), 0); bs.Valid() {
		t.Errorf("expected invalid sample for outgoing below surface, got %v", bs)
	}
}

func TestLambert_ResolveTextures_DropsBindings(t *testing.T) {
	tex := texture.New(1, 1, []core.Vec3{core.NewVec3(1, 0, 0)})
	mat := &Lambert{Diffuse: core.NewVec3(0.25, 0.5, 0.75), DiffuseTexture: tex}

	if !mat.HasTextures() {
		t.Fatal("expected HasTextures with a bound diffuse texture")
	}

	resolved := mat.ResolveTextures(core.NewVec2(0.5, 0.5))
	if resolved.HasTextures() {
		t.Error("resolved material still reports textures")
	}

	// The resolved instance carries the base coefficient, not a texture sample
	if got := resolved.DiffuseAlbedo(); got != mat.Diffuse {
		t.Errorf("resolved albedo: got %v, expected base diffuse %v", got, mat.Diffuse)
	}
}

func TestLambert_EvaluationPanicsWithTextures(t *testing.T) {
	tex := texture.New(1, 1, []core.Vec3{core.NewVec3(1, 1, 1)})
	mat := &Lambert{Diffuse: core.NewVec3(0.5, 0.5, 0.5), DiffuseTexture: tex}

	defer func() {
		if recover() == nil {
			t.Error("expected panic when evaluating a material with bound textures")
		}
	}()
	mat.DiffuseAlbedo()
}

func TestLambert_NoReflectionLobe(t *testing.T) {
	mat := NewLambert(core.NewVec3(0.9, 0.9, 0.9))
	frame := upFrame()
	wo := core.NewVec3(0, 0, 1)

	if bs := mat.SampleReflection(frame, wo); bs.Valid() {
		t.Errorf("SampleReflection: expected invalid sample, got %v", bs)
	}
	if bs := mat.SampleBlurryReflection(frame, wo, core.NewVec2(0.3, 0.7)); bs.Valid() {
		t.Errorf("SampleBlurryReflection: expected invalid sample, got %v", bs)
	}
}
