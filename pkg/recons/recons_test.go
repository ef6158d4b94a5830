package recons_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenrender/lumen/pkg/buffer"
	"github.com/lumenrender/lumen/pkg/core"
	"github.com/lumenrender/lumen/pkg/recons"
)

func checkerboard(w, h int) *buffer.Collection {
	est := buffer.NewCollection(w, h, "primal", "gradient_x", "gradient_y", "very_direct")
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := 0.0
			if (x+y)%2 == 0 {
				v = 1.0
			}
			est.Set(x, y, "primal", core.NewColorValue(v))
		}
	}
	return est
}

func TestUniformReconstruction_ZeroGradientsConvergesToMean(t *testing.T) {
	est := checkerboard(8, 8)
	r := recons.UniformPoissonReconstruction{Iterations: 50, Workers: 4}

	out, err := r.Reconstruct(context.Background(), est)
	require.NoError(t, err)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.InDelta(t, 0.5, out.Get(x, y, "primal").R, 1e-3)
		}
	}
}

func TestUniformReconstruction_ConstantPrimalIsFixedPoint(t *testing.T) {
	est := buffer.NewCollection(4, 4, "primal", "gradient_x", "gradient_y", "very_direct")
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			est.Set(x, y, "primal", core.NewColorValue(0.3))
		}
	}
	r := recons.UniformPoissonReconstruction{Iterations: 10, Workers: 2}

	out, err := r.Reconstruct(context.Background(), est)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, out.Get(2, 2, "primal").R, 1e-6)
}

func TestBaggingReconstruction_RequiresTwoBuffers(t *testing.T) {
	est := checkerboard(2, 2)
	r := recons.BaggingPoissonReconstruction{Iterations: 1, NumBuffers: 1}
	assert.Panics(t, func() {
		_, _ = r.Reconstruct(context.Background(), est)
	})
}
