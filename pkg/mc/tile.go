// Package mc is the tile-parallel Monte Carlo rendering driver: it splits
// the image into tiles, runs a worker pool over them, and merges completed
// tiles back into a buffer.Collection in deterministic row-major order.
// Grounded throughout on pkg/renderer's tile/worker-pool/progressive split
// in the teacher.
package mc

import (
	"image"
	"math/rand"
)

// Tile is a rectangular pixel region with its own deterministically seeded
// RNG, grounded on pkg/renderer/progressive.go's Tile/NewTile.
type Tile struct {
	ID     int
	Bounds image.Rectangle
	Random *rand.Rand
}

// NewTile builds a tile with a seed derived from its ID, the same +42
// offset the teacher uses to avoid handing out seed 0.
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: rand.New(rand.NewSource(int64(id + 42))),
	}
}

// NewTileGrid covers width x height with tileSize x tileSize tiles,
// clamped at the image edges, in row-major order. Grounded on
// pkg/renderer/progressive.go's NewTileGrid.
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0 := tx * tileSize
			y0 := ty * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}
