package mc

import (
	"sort"

	"github.com/lumenrender/lumen/pkg/buffer"
	"github.com/lumenrender/lumen/pkg/scenecap"
)

// RenderImage drives a full tile-parallel render: it builds a tile grid,
// runs a worker pool of numWorkers over it with render, and merges every
// tile's result into a single Collection in tile-ID (row-major) order so
// the final image is reproducible across runs regardless of goroutine
// completion order. Grounded on
// pkg/renderer/progressive.go's RenderPass driving a WorkerPool and
// collecting TileResults, simplified to a single pass (the gradient and
// MCMC pipelines each drive their own pass/chain count above this).
func RenderImage(scene scenecap.Scene, render TileRenderFunc, width, height, tileSize, spp, numWorkers int, channels []string) *buffer.Collection {
	tiles := NewTileGrid(width, height, tileSize)
	pool := NewWorkerPool(scene, render, width, height, channels, numWorkers)
	pool.Start()

	go func() {
		for _, tile := range tiles {
			pool.SubmitTask(TileTask{Tile: tile, Spp: spp})
		}
		pool.Stop()
	}()

	results := make([]TileResult, 0, len(tiles))
	for r := range pool.Results() {
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Tile.ID < results[j].Tile.ID })

	dst := buffer.NewCollection(width, height, channels...)
	for _, r := range results {
		b := r.Tile.Bounds
		for _, name := range channels {
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					dst.Set(x, y, name, r.Dest.Get(x, y, name))
				}
			}
		}
	}

	return dst
}
