package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/lumenrender/lumen/pkg/buffer"
	"github.com/lumenrender/lumen/pkg/integrator"
	"github.com/lumenrender/lumen/pkg/mc"
	"github.com/lumenrender/lumen/pkg/recons"
	"github.com/lumenrender/lumen/pkg/scenecap"
)

// renderSubsetBuffers runs numBuffers independent gradient-path passes over
// scene, each into its own "primal_i"/"gradient_x_i"/"gradient_y_i"
// channel trio (consumed by weighted/bagging reconstruction's variance
// estimate) plus the plain "primal"/"gradient_x"/"gradient_y" average over
// all passes (consumed by uniform reconstruction) and an empty
// "very_direct" channel.
func renderSubsetBuffers(scene scenecap.Scene, p *integrator.PathIntegrator, tileSize, spp, numWorkers, numBuffers int) *buffer.Collection {
	w, h := scene.ImageWidth(), scene.ImageHeight()
	est := buffer.NewCollection(w, h, "primal", "gradient_x", "gradient_y", "very_direct")

	gradient := integrator.NewGradientPathIntegrator(p)
	driver := &mc.GradientPixelDriver{Gradient: gradient}

	for i := 0; i < numBuffers; i++ {
		// NewTileGrid seeds tiles from their ID alone, so each pass reseeds
		// its tiles to draw a different sample subset.
		pass := int64(i)
		render := func(scene scenecap.Scene, tile *mc.Tile, dst *buffer.Collection, spp int) {
			tile.Random = rand.New(rand.NewSource(int64(tile.ID+42) + pass<<32))
			driver.RenderTile(scene, tile, dst, spp)
		}
		subset := mc.RenderImage(scene, render, w, h, tileSize, spp, numWorkers, []string{"primal", "gradient_x", "gradient_y"})

		for _, base := range []string{"primal", "gradient_x", "gradient_y"} {
			name := fmt.Sprintf("%s_%d", base, i)
			est.Register(name)
			est.AccumulateBitmapBuffer(subset, base, name)
			est.AccumulateBitmapBuffer(subset, base, base)
		}
	}

	if numBuffers > 1 {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				for _, base := range []string{"primal", "gradient_x", "gradient_y"} {
					est.Set(x, y, base, est.Get(x, y, base).Div(float64(numBuffers)))
				}
			}
		}
	}

	return est
}

func newGradientCmd(flags *globalFlags) *cobra.Command {
	var maxDepth, minDepth int
	var reconsType string
	var iterations int
	var numBuffers int

	cmd := &cobra.Command{
		Use:   "gradient <scene>",
		Short: "gradient-domain path tracing with screened Poisson reconstruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := loadScene(args[0])
			if err != nil {
				return err
			}

			p := &integrator.PathIntegrator{NextEventEstimation: true}
			if maxDepth > 0 {
				p.MaxDepth = &maxDepth
			}
			if minDepth > 0 {
				p.MinDepth = &minDepth
			}

			est := renderSubsetBuffers(scene, p, flags.tileSize, flags.spp, flags.numWorker, numBuffers)

			var result *buffer.Collection
			switch reconsType {
			case "uniform":
				result, err = recons.UniformPoissonReconstruction{Iterations: iterations, Workers: flags.numWorker}.Reconstruct(context.Background(), est)
			case "weighted":
				ids := make([]int, numBuffers)
				for i := range ids {
					ids[i] = i
				}
				result, err = recons.WeightedPoissonReconstruction{Iterations: iterations, BufferIDs: ids, Workers: flags.numWorker}.Reconstruct(context.Background(), est)
			case "bagging":
				result, err = recons.BaggingPoissonReconstruction{Iterations: iterations, NumBuffers: numBuffers, Workers: flags.numWorker}.Reconstruct(context.Background(), est)
			default:
				return fmt.Errorf("lumen: unknown reconstruction type %q (want uniform, weighted, or bagging)", reconsType)
			}
			if err != nil {
				return err
			}

			return writeOutput(result, flags.output)
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum bounce depth (0 = unbounded)")
	cmd.Flags().IntVar(&minDepth, "min-depth", 0, "first depth at which contributions count (0 = every depth)")
	// main.rs spells the reconstruction type -t, already claimed by the root
	// command's threads flag in cobra's shared persistent-flag namespace.
	cmd.Flags().StringVar(&reconsType, "reconstruction", "uniform", "reconstruction type: uniform, weighted, or bagging")
	cmd.Flags().IntVarP(&iterations, "iterations", "r", 50, "Poisson solve iterations")
	cmd.Flags().IntVar(&numBuffers, "buffers", 2, "independent sample subsets for weighted/bagging variance estimates")

	return cmd
}
