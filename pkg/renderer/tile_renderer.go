package renderer

import (
	"image"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/integrator"
)

// Scene is what the renderer needs: the integrator's scene view plus a camera
type Scene interface {
	integrator.Scene
	Camera() *Camera
}

// TileRenderer renders pixel regions with an integrator
type TileRenderer struct {
	scene      Scene
	integrator integrator.Integrator
}

// NewTileRenderer creates a tile renderer
func NewTileRenderer(scene Scene, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{scene: scene, integrator: integratorInst}
}

// RenderBounds samples every pixel in bounds up to targetSamples total
// samples, accumulating into the shared pixel statistics array. Tiles have
// disjoint bounds, so concurrent calls over different tiles are safe.
// Each pixel draws from its own stream, so the result is independent of how
// the budget is split across passes and tiles.
func (tr *TileRenderer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, targetSamples int) RenderStats {
	camera := tr.scene.Camera()
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		MaxSamples:  targetSamples,
		MinSamples:  targetSamples,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			before := ps.SampleCount
			sampler := core.NewRandomSampler(ps.Random(i, j))

			// Progressive refinement: only add the samples still missing
			for ps.SampleCount < targetSamples {
				px := float64(i) + (0.5 - sampler.Get1D())
				py := float64(j) + (0.5 - sampler.Get1D())
				ray := camera.GetRay(px, py, sampler)
				ps.AddSample(tr.integrator.RayColor(ray, tr.scene, sampler, 0))
			}

			used := ps.SampleCount - before
			stats.TotalSamples += used
			stats.MinSamples = min(stats.MinSamples, used)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, used)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return stats
}
