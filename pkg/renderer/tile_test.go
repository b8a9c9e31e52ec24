package renderer

import (
	"testing"
)

func TestNewTileGrid_CoversImage(t *testing.T) {
	width, height, tileSize := 100, 70, 32
	tiles := NewTileGrid(width, height, tileSize)

	// 4x3 grid with clipped edges
	if len(tiles) != 12 {
		t.Fatalf("tile count: got %d, expected 12", len(tiles))
	}

	covered := make([][]int, height)
	for y := range covered {
		covered[y] = make([]int, width)
	}
	for _, tile := range tiles {
		b := tile.Bounds
		if b.Min.X < 0 || b.Min.Y < 0 || b.Max.X > width || b.Max.Y > height {
			t.Fatalf("tile %d out of image bounds: %v", tile.ID, b)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				covered[y][x]++
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if covered[y][x] != 1 {
				t.Fatalf("pixel (%d,%d) covered %d times", x, y, covered[y][x])
			}
		}
	}
}

func TestPixelStats_RandomStream(t *testing.T) {
	// Same coordinates seed the same sequence
	var a, b PixelStats
	for i := 0; i < 10; i++ {
		if a.Random(5, 7).Float64() != b.Random(5, 7).Float64() {
			t.Fatal("pixels at the same coordinates produced different random sequences")
		}
	}

	// The stream persists across calls rather than restarting
	var c PixelStats
	first := c.Random(5, 7).Float64()
	second := c.Random(5, 7).Float64()
	if first == second {
		t.Error("expected the stream to advance between calls")
	}

	// Different coordinates seed different sequences
	var d PixelStats
	same := true
	for i := 0; i < 10; i++ {
		if a.Random(5, 7).Float64() != d.Random(6, 7).Float64() {
			same = false
		}
	}
	if same {
		t.Error("pixels at different coordinates produced identical random sequences")
	}
}
