package mc

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/lumenrender/lumen/pkg/buffer"
	"github.com/lumenrender/lumen/pkg/core"
	"github.com/lumenrender/lumen/pkg/integrator"
	"github.com/lumenrender/lumen/pkg/sampler"
	"github.com/lumenrender/lumen/pkg/scenecap"
)

// ChainFunc maps a replay sampler's primary-sample-space state to a pixel
// location and a radiance contribution f(x), the quantity the Metropolis
// chain mutates and re-evaluates. Grounded on
// original_source/src/sampler.rs's ReplaySampler combined with
// spec.md §6's `propose → I(x) → accept/splat/commit` loop.
type ChainFunc func(scene scenecap.Scene, samp *sampler.ReplaySampler) (pixel core.Vec2, contribution core.Color)

// MetropolisChain runs one Metropolis-Hastings chain of primary-sample-space
// path proposals against a path integrator. Every iteration splats the
// current state's contribution weighted by one minus the acceptance
// probability and the proposal's weighted by the acceptance probability
// into the chain's destination Collection. Grounded on spec.md §6:
// "propose (large step with probability p_large, else small step), compute
// I(x) = luminance(f(x)), accept with probability min(1, I(x')/I(x)),
// splat the current state's contribution f(x)/I(x) weighted by acceptance
// fraction into the image, then commit via accept()/reject()."
type MetropolisChain struct {
	PLarge     float64
	Iterations int
}

// Run executes the chain's proposals, accumulating splats into dst's
// "primal" channel. chain maps sampler state to a pixel and contribution;
// rnd drives the chain's large/small-step coin flip and the replay
// sampler's underlying randomness.
func (m *MetropolisChain) Run(scene scenecap.Scene, chain ChainFunc, dst *buffer.Collection, rnd *rand.Rand) {
	mutator := sampler.DefaultKelemenMutator()
	samp := sampler.NewReplaySampler(rnd, mutator)

	pixel, f := chain(scene, samp)
	lum := f.Luminance()

	for i := 0; i < m.Iterations; i++ {
		samp.LargeStep = rnd.Float64() < m.PLarge

		proposedPixel, proposedF := chain(scene, samp)
		proposedLum := proposedF.Luminance()

		accept := 0.0
		if lum > 0 {
			accept = min(1.0, proposedLum/lum)
		} else if proposedLum > 0 {
			accept = 1.0
		}

		if lum > 0 {
			splat(dst, pixel, f.Scale((1 - accept) / lum))
		}
		if proposedLum > 0 {
			splat(dst, proposedPixel, proposedF.Scale(accept/proposedLum))
		}

		if rnd.Float64() < accept {
			samp.Accept()
			pixel, f, lum = proposedPixel, proposedF, proposedLum
		} else {
			samp.Reject()
		}
	}
}

func splat(dst *buffer.Collection, pixel core.Vec2, contribution core.Color) {
	x, y := int(pixel.X), int(pixel.Y)
	if x < 0 || y < 0 || x >= dst.Width || y >= dst.Height {
		return
	}
	dst.Accumulate(x, y, contribution, "primal")
}

// RunChains fans numChains independent MetropolisChain runs out across an
// errgroup, each writing into its own per-chain Collection, then sums them
// into a single result. Grounded on pkg/recons's errgroup-based fan-out
// (golang.org/x/sync/errgroup covers the same "parallel workers converging
// on a barrier" concern here as it does for reconstruction's per-iteration
// sweep).
func RunChains(scene scenecap.Scene, makeChain func(chainID int) ChainFunc, width, height, numChains, iterationsPerChain int, pLarge float64) *buffer.Collection {
	partials := make([]*buffer.Collection, numChains)

	var g errgroup.Group
	for c := 0; c < numChains; c++ {
		c := c
		g.Go(func() error {
			partials[c] = buffer.NewCollection(width, height, "primal")
			chain := &MetropolisChain{PLarge: pLarge, Iterations: iterationsPerChain}
			rnd := rand.New(rand.NewSource(int64(c + 42)))
			chain.Run(scene, makeChain(c), partials[c], rnd)
			return nil
		})
	}
	_ = g.Wait()

	dst := buffer.NewCollection(width, height, "primal")
	for _, p := range partials {
		dst.AccumulateBitmap(p)
	}
	return dst
}

// PathChainFunc builds a ChainFunc that traces a single full path-traced
// pixel sample for the given pixel dimensions, using samp's Next2D to pick
// both the pixel location and the path's random decisions from the same
// primary-sample-space stream, the canonical PSSMLT setup.
func PathChainFunc(path *integrator.PathIntegrator, width, height int) ChainFunc {
	return func(scene scenecap.Scene, samp *sampler.ReplaySampler) (core.Vec2, core.Color) {
		pixelSample := samp.Next2D()
		pixel := core.Vec2{X: pixelSample.X * float64(width), Y: pixelSample.Y * float64(height)}
		ray := scene.Camera().Generate(pixel)
		return pixel, path.SamplePixel(scene, samp, ray)
	}
}
