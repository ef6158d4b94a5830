// Package recons implements the screened Poisson reconstruction variants
// that turn a primal + gradient buffer collection into a denoised image:
// uniform, variance-weighted, and leave-one-out bagging.
package recons

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lumenrender/lumen/pkg/buffer"
)

// rowBlocks splits [0,height) into chunks for parallel iteration, mirroring
// the original's image-block decomposition without needing its own block
// type — a goroutine per chunk is enough parallelism for a row-major sweep.
func rowBlocks(height, chunks int) [][2]int {
	if chunks < 1 {
		chunks = 1
	}
	if chunks > height {
		chunks = height
	}
	size := (height + chunks - 1) / chunks
	var blocks [][2]int
	for y0 := 0; y0 < height; y0 += size {
		y1 := y0 + size
		if y1 > height {
			y1 = height
		}
		blocks = append(blocks, [2]int{y0, y1})
	}
	return blocks
}

// UniformPoissonReconstruction reconstructs primal+gradients with equal
// weight given to every term of the 5-point stencil, as
// original_source/src/integrators/gradient/recons.rs's
// UniformPoissonReconstruction does.
type UniformPoissonReconstruction struct {
	Iterations int
	// Workers bounds the goroutine fan-out per iteration; 0 uses a single
	// worker (sequential).
	Workers int
}

// Reconstruct runs the iterative solve and returns a new collection
// carrying only the resulting "primal" channel.
func (r UniformPoissonReconstruction) Reconstruct(ctx context.Context, est *buffer.Collection) (*buffer.Collection, error) {
	w, h := est.Width, est.Height
	current := buffer.NewCollection(w, h, "recons")
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			current.Accumulate(x, y, est.Get(x, y, "primal"), "recons")
		}
	}

	for iter := 0; iter < r.Iterations; iter++ {
		next := buffer.NewCollection(w, h, "recons")
		g, _ := errgroup.WithContext(ctx)
		for _, blk := range rowBlocks(h, r.Workers) {
			y0, y1 := blk[0], blk[1]
			g.Go(func() error {
				for y := y0; y < y1; y++ {
					for x := 0; x < w; x++ {
						c := current.Get(x, y, "recons")
						weight := 1.0
						if x > 0 {
							c = c.Add(current.Get(x-1, y, "recons")).Add(est.Get(x-1, y, "gradient_x"))
							weight += 1
						}
						if x < w-1 {
							c = c.Add(current.Get(x+1, y, "recons")).Subtract(est.Get(x, y, "gradient_x"))
							weight += 1
						}
						if y > 0 {
							c = c.Add(current.Get(x, y-1, "recons")).Add(est.Get(x, y-1, "gradient_y"))
							weight += 1
						}
						if y < h-1 {
							c = c.Add(current.Get(x, y+1, "recons")).Subtract(est.Get(x, y, "gradient_y"))
							weight += 1
						}
						next.Set(x, y, "recons", c.Scale(1.0/weight))
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		current = next
	}

	out := buffer.NewCollection(w, h, "primal")
	out.AccumulateBitmapBuffer(current, "recons", "primal")
	out.AccumulateBitmapBuffer(est, "very_direct", "primal")
	return out, nil
}
