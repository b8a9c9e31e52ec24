package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/amonkey/go-distribution-raytracer/pkg/integrator"
	"github.com/amonkey/go-distribution-raytracer/pkg/renderer"
	"github.com/amonkey/go-distribution-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cornell'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	passes := flag.Int("passes", 4, "Number of progressive passes")
	workers := flag.Int("workers", 0, "Parallel workers (0 = CPU count)")
	cameraLights := flag.Bool("cameralights", false, "Light with the camera group instead of scene lights")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Distribution Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Spheres on a ground plane with point, sun and sky lights")
		fmt.Println("  cornell - Cornell box with a ceiling area light")
		fmt.Println()
		fmt.Println("Output is saved to output/<scene>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting distribution raytracer...")

	var selectedScene *scene.Scene
	switch *sceneType {
	case "cornell":
		if *height == 0 {
			*height = *width // Square aspect for the box
		}
		selectedScene = scene.NewCornellScene(*width, *height)
	case "default":
		if *height == 0 {
			*height = *width * 9 / 16
		}
		selectedScene = scene.NewDefaultScene(*width, *height)
	default:
		fmt.Printf("Unknown scene type %q. Using default scene.\n", *sceneType)
		*sceneType = "default"
		if *height == 0 {
			*height = *width * 9 / 16
		}
		selectedScene = scene.NewDefaultScene(*width, *height)
	}

	if *samples > 0 {
		selectedScene.Config.Samples = *samples
	}
	selectedScene.Config.CameraLights = *cameraLights
	selectedScene.Preprocess()

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	progressiveConfig := renderer.ProgressiveConfig{
		TileSize:           64,
		InitialSamples:     1,
		MaxSamplesPerPixel: selectedScene.Config.Samples,
		MaxPasses:          *passes,
		NumWorkers:         *workers,
	}

	integ := integrator.NewDistribution(selectedScene.Config)
	raytracer := renderer.NewProgressiveRaytracer(
		selectedScene, integ, *width, *height, progressiveConfig, renderer.NewDefaultLogger())

	startTime := time.Now()
	passChan, errChan := raytracer.RenderProgressive(context.Background())

	var final renderer.PassResult
	for result := range passChan {
		final = result
	}
	if err := <-errChan; err != nil {
		fmt.Printf("Render failed: %v\n", err)
		return
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Samples per pixel: %.1f (range %d - %d)\n",
		final.Stats.AverageSamples, final.Stats.MinSamples, final.Stats.MaxSamplesUsed)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, final.Image); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}
