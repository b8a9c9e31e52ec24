package renderer

import (
	"image"
)

// Tile is a rectangular region of the image. Randomness lives in the
// per-pixel accumulation entries, not the tile, so a tile renders the same
// no matter which worker picks it up.
type Tile struct {
	ID              int
	Bounds          image.Rectangle
	PassesCompleted int
}

// NewTile creates a tile
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
	}
}

// NewTileGrid creates tiles covering the full image, clipping the last row
// and column to the image bounds
func NewTileGrid(width, height, tileSize int) []*Tile {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	tiles := make([]*Tile, 0, tilesX*tilesY)
	id := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileSize
			y0 := ty * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			tiles = append(tiles, NewTile(id, image.Rect(x0, y0, x1, y1)))
			id++
		}
	}
	return tiles
}
