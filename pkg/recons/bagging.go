package recons

import (
	"context"
	"fmt"

	"github.com/lumenrender/lumen/pkg/buffer"
	"github.com/lumenrender/lumen/pkg/core"
)

// BaggingPoissonReconstruction runs NumBuffers weighted reconstructions,
// each leaving one sample-subset buffer out, and reports the average as
// primal plus primal_mean/primal_variance/relerr channels. Grounded on
// original_source/src/integrators/gradient/recons.rs's
// BaggingPoissonReconstruction.
type BaggingPoissonReconstruction struct {
	Iterations int
	NumBuffers int
	Workers    int
}

// Reconstruct runs the leave-one-out sweep and returns a collection whose
// "primal" channel is the bagged average (via buffer.Collection.Rename
// from "primal_mean", matching the original's final rename).
func (r BaggingPoissonReconstruction) Reconstruct(ctx context.Context, est *buffer.Collection) (*buffer.Collection, error) {
	if r.NumBuffers < 2 {
		panic("recons: bagging requires at least two sample subsets")
	}
	w, h := est.Width, est.Height

	imageRecons := buffer.NewCollection(w, h)
	var bufferNames []string
	for n := 0; n < r.NumBuffers; n++ {
		var ids []int
		for i := 0; i < r.NumBuffers; i++ {
			if i == n {
				continue
			}
			ids = append(ids, i)
		}
		weighted := WeightedPoissonReconstruction{Iterations: r.Iterations, BufferIDs: ids, Workers: r.Workers}
		result, err := weighted.Reconstruct(ctx, est)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("primal_%d", n)
		imageRecons.Register(name)
		imageRecons.AccumulateBitmapBuffer(result, "primal", name)
		bufferNames = append(bufferNames, name)
	}

	imageAvg := buffer.NewCollection(w, h)
	imageAvg.RegisterMeanVariance("primal", imageRecons, bufferNames)

	imageAvg.Register("relerr")
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mean := imageAvg.Get(x, y, "primal_mean")
			variance := imageAvg.Get(x, y, "primal_variance")
			relerr := variance.DivColor(mean.Add(core.NewColorValue(0.001)))
			imageAvg.Accumulate(x, y, relerr, "relerr")
		}
	}

	imageAvg.Rename("primal_mean", "primal")
	imageAvg.Register("primal_mean")
	imageAvg.AccumulateBitmapBuffer(imageAvg, "primal", "primal_mean")
	return imageAvg, nil
}
