package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/lumenrender/lumen/pkg/integrator"
	"github.com/lumenrender/lumen/pkg/mc"
)

// newMCMCCmd mirrors main.rs's "pssmlt" subcommand: max/min depth plus
// `-p`/"large_prob", the probability of proposing a large step.
func newMCMCCmd(flags *globalFlags) *cobra.Command {
	var maxDepth, minDepth int
	var pLarge float64
	var numChains int

	cmd := &cobra.Command{
		Use:   "mcmc <scene>",
		Short: "primary-sample-space Metropolis light transport",
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

			chains := numChains
			if chains <= 0 {
				chains = flags.numWorker
				if chains <= 0 {
					chains = runtime.NumCPU()
				}
			}

			width, height := scene.ImageWidth(), scene.ImageHeight()
			iterationsPerChain := (width * height * flags.spp) / chains

			chainFunc := mc.PathChainFunc(p, width, height)
			result := mc.RunChains(scene, func(int) mc.ChainFunc { return chainFunc }, width, height, chains, iterationsPerChain, pLarge)

			return writeOutput(result, flags.output)
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum bounce depth (0 = unbounded)")
	cmd.Flags().IntVar(&minDepth, "min-depth", 0, "first depth at which contributions count (0 = every depth)")
	cmd.Flags().Float64VarP(&pLarge, "large-prob", "p", 0.3, "probability of proposing a large step")
	cmd.Flags().IntVar(&numChains, "chains", 0, "independent Metropolis chains (0 = use worker thread count)")

	return cmd
}
