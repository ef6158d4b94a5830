package recons

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/lumenrender/lumen/pkg/buffer"
)

func invOr1(v float64) float64 {
	if v == 0 {
		return 1
	}
	return 1 / v
}

// WeightedPoissonReconstruction is the same 5-point stencil as Uniform, but
// each term is weighted by the inverse of a variance estimate derived from
// BufferIDs independent sample subsets. The primal variance is scaled per
// iteration by 1/(1.01 + 4*0.5^iter), which rises from about 0.2 toward
// 1/1.01, so a pixel's own value carries the most relative weight in the
// first iterations and its neighbors gain weight as iterations proceed.
// Grounded on
// original_source/src/integrators/gradient/recons.rs's
// WeightedPoissonReconstruction.
type WeightedPoissonReconstruction struct {
	Iterations int
	// BufferIDs selects which sample-subset buffers ("primal_i" etc.) to
	// average for the variance estimate. Must have at least 2 entries.
	BufferIDs []int
	Workers   int
}

// NeedsVarianceEstimates returns how many independent sample-subset buffers
// this reconstruction requires.
func (r WeightedPoissonReconstruction) NeedsVarianceEstimates() int {
	return len(r.BufferIDs)
}

func subsetNames(prefix string, ids []int) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = fmt.Sprintf("%s_%d", prefix, id)
	}
	return names
}

func (r WeightedPoissonReconstruction) averagedVariance(est *buffer.Collection) *buffer.Collection {
	avg := buffer.NewCollection(est.Width, est.Height)
	for _, buf := range []string{"primal", "gradient_x", "gradient_y"} {
		avg.RegisterMeanVariance(buf, est, subsetNames(buf, r.BufferIDs))
	}
	return avg
}

// Reconstruct runs the iterative solve and returns a new collection
// carrying only the resulting "primal" channel.
func (r WeightedPoissonReconstruction) Reconstruct(ctx context.Context, est *buffer.Collection) (*buffer.Collection, error) {
	if len(r.BufferIDs) < 2 {
		panic("recons: weighted reconstruction requires at least two sample subsets")
	}
	w, h := est.Width, est.Height
	avgVar := r.averagedVariance(est)

	current := buffer.NewCollection(w, h, "recons")
	current.AccumulateBitmapBuffer(avgVar, "primal_mean", "recons")

	for iter := 0; iter < r.Iterations; iter++ {
		coeffVarRed := 1.0 / (0.01 + 1.0 + 4.0*math.Pow(0.5, float64(iter)))
		next := buffer.NewCollection(w, h, "recons")
		g, _ := errgroup.WithContext(ctx)
		for _, blk := range rowBlocks(h, r.Workers) {
			y0, y1 := blk[0], blk[1]
			g.Go(func() error {
				for y := y0; y < y1; y++ {
					for x := 0; x < w; x++ {
						varPos := avgVar.Get(x, y, "primal_variance").ChannelMax() * coeffVarRed
						selfWeight := invOr1(varPos)
						c := current.Get(x, y, "recons").Scale(selfWeight)
						weight := selfWeight

						if x > 0 {
							wgt := invOr1(varPos + avgVar.Get(x-1, y, "gradient_x_variance").ChannelMax())
							c = c.Add(current.Get(x-1, y, "recons").Add(avgVar.Get(x-1, y, "gradient_x_mean")).Scale(wgt))
							weight += wgt
						}
						if x < w-1 {
							wgt := invOr1(varPos + avgVar.Get(x, y, "gradient_x_variance").ChannelMax())
							c = c.Add(current.Get(x+1, y, "recons").Subtract(avgVar.Get(x, y, "gradient_x_mean")).Scale(wgt))
							weight += wgt
						}
						if y > 0 {
							wgt := invOr1(varPos + avgVar.Get(x, y-1, "gradient_y_variance").ChannelMax())
							c = c.Add(current.Get(x, y-1, "recons").Add(avgVar.Get(x, y-1, "gradient_y_mean")).Scale(wgt))
							weight += wgt
						}
						if y < h-1 {
							wgt := invOr1(varPos + avgVar.Get(x, y, "gradient_y_variance").ChannelMax())
							c = c.Add(current.Get(x, y+1, "recons").Subtract(avgVar.Get(x, y, "gradient_y_mean")).Scale(wgt))
							weight += wgt
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
