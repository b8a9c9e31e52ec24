package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/amonkey/go-distribution-raytracer/pkg/core"
	"github.com/amonkey/go-distribution-raytracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a stdout logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ProgressiveConfig configures progressive rendering
type ProgressiveConfig struct {
	TileSize           int // Tile edge in pixels
	InitialSamples     int // Samples for the first quick-preview pass
	MaxSamplesPerPixel int // Total samples per pixel across all passes
	MaxPasses          int // Number of passes
	NumWorkers         int // Parallel workers, 0 = CPU count
}

// DefaultProgressiveConfig returns sensible defaults
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           64,
		InitialSamples:     1,
		MaxSamplesPerPixel: 16,
		MaxPasses:          4,
		NumWorkers:         0,
	}
}

// ProgressiveRaytracer schedules render passes over a tile grid. Every pass
// raises the per-pixel sample target; earlier sums are kept, so each pass
// only adds the missing samples.
type ProgressiveRaytracer struct {
	scene         Scene
	width, height int
	config        ProgressiveConfig
	tiles         []*Tile
	pixelStats    [][]PixelStats
	workerPool    *WorkerPool
	logger        core.Logger
}

// NewProgressiveRaytracer creates a progressive raytracer over the scene
func NewProgressiveRaytracer(scene Scene, integratorInst integrator.Integrator, width, height int, config ProgressiveConfig, logger core.Logger) *ProgressiveRaytracer {
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}

	return &ProgressiveRaytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		tiles:      NewTileGrid(width, height, config.TileSize),
		pixelStats: pixelStats,
		workerPool: NewWorkerPool(scene, integratorInst, width, height, config.NumWorkers),
		logger:     logger,
	}
}

// samplesForPass returns the cumulative per-pixel sample target after a pass
func (pr *ProgressiveRaytracer) samplesForPass(passNumber int) int {
	if pr.config.MaxPasses == 1 {
		return pr.config.MaxSamplesPerPixel
	}
	if passNumber == 1 {
		return pr.config.InitialSamples
	}

	remaining := pr.config.MaxSamplesPerPixel - pr.config.InitialSamples
	perPass := remaining / (pr.config.MaxPasses - 1)
	target := pr.config.InitialSamples + (passNumber-1)*perPass

	if passNumber == pr.config.MaxPasses {
		target = pr.config.MaxSamplesPerPixel
	}
	return target
}

// RenderPass renders one pass across all tiles in parallel
func (pr *ProgressiveRaytracer) RenderPass(passNumber int) (*image.RGBA, RenderStats, error) {
	targetSamples := pr.samplesForPass(passNumber)

	pr.logger.Printf("Pass %d: target %d samples per pixel (%d workers)\n",
		passNumber, targetSamples, pr.workerPool.NumWorkers())

	if passNumber == 1 {
		pr.workerPool.Start()
	}

	for taskID, tile := range pr.tiles {
		pr.workerPool.SubmitTask(TileTask{
			Tile:          tile,
			PassNumber:    passNumber,
			TargetSamples: targetSamples,
			TaskID:        taskID,
			PixelStats:    pr.pixelStats,
		})
	}

	for range pr.tiles {
		result, ok := pr.workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, RenderStats{}, result.Error
		}
		pr.tiles[result.TaskID].PassesCompleted++
	}

	img, stats := pr.assembleCurrentImage(targetSamples)
	return img, stats, nil
}

// PassResult is one completed pass
type PassResult struct {
	PassNumber int
	Image      *image.RGBA
	Stats      RenderStats
	IsLast     bool
}

// RenderProgressive runs all passes on a goroutine, reporting each pass over
// the returned channels. Cancel the context to stop between passes.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)
		defer pr.workerPool.Stop()

		pr.logger.Printf("Starting progressive rendering with %d passes...\n", pr.config.MaxPasses)

		for pass := 1; pass <= pr.config.MaxPasses; pass++ {
			select {
			case <-ctx.Done():
				pr.logger.Printf("Rendering cancelled before pass %d\n", pass)
				errChan <- ctx.Err()
				return
			default:
			}

			startTime := time.Now()
			img, stats, err := pr.RenderPass(pass)
			if err != nil {
				errChan <- err
				return
			}

			pr.logger.Printf("Pass %d completed in %v (avg %.1f samples/pixel)\n",
				pass, time.Since(startTime), stats.AverageSamples)

			done := int(stats.AverageSamples) >= pr.config.MaxSamplesPerPixel
			result := PassResult{
				PassNumber: pass,
				Image:      img,
				Stats:      stats,
				IsLast:     pass == pr.config.MaxPasses || done,
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}

			if done {
				return
			}
		}
	}()

	return passChan, errChan
}

// assembleCurrentImage builds the image and pass statistics from the
// accumulation buffer
func (pr *ProgressiveRaytracer) assembleCurrentImage(targetSamples int) (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, pr.width, pr.height))
	stats := RenderStats{
		TotalPixels: pr.width * pr.height,
		MaxSamples:  targetSamples,
		MinSamples:  pr.config.MaxSamplesPerPixel,
	}

	for y := 0; y < pr.height; y++ {
		for x := 0; x < pr.width; x++ {
			pixel := &pr.pixelStats[y][x]
			img.SetRGBA(x, y, vec3ToColor(pixel.GetColor()))

			stats.TotalSamples += pixel.SampleCount
			stats.MinSamples = min(stats.MinSamples, pixel.SampleCount)
			stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, pixel.SampleCount)
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return img, stats
}

// vec3ToColor converts linear radiance to a display color with gamma 2.0
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
