package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumenrender/lumen/pkg/average"
	"github.com/lumenrender/lumen/pkg/buffer"
	"github.com/lumenrender/lumen/pkg/integrator"
	"github.com/lumenrender/lumen/pkg/mc"
)

// newPathCmd mirrors main.rs's "path" subcommand (max/min depth args,
// `-p`/"primitive" to disable next-event estimation). The depth flags are
// spelled long-form here (--max-depth/--min-depth) rather than reusing the
// original's `-m`/`-n` shorthands: `-n` is already the root command's
// samples-per-pixel flag, a collision the original's per-subcommand clap
// arg scoping tolerated but cobra's shared persistent-flag namespace does
// not.
func newPathCmd(flags *globalFlags) *cobra.Command {
	var maxDepth, minDepth int
	var noNEE bool

	cmd := &cobra.Command{
		Use:   "path <scene>",
		Short: "unidirectional path tracing with next-event estimation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := loadScene(args[0])
			if err != nil {
				return err
			}

			p := &integrator.PathIntegrator{NextEventEstimation: !noNEE}
			if maxDepth > 0 {
				p.MaxDepth = &maxDepth
			}
			if minDepth > 0 {
				p.MinDepth = &minDepth
			}
			driver := &mc.PixelDriver{Path: p}

			render := func() *buffer.Collection {
				return mc.RenderImage(scene, driver.RenderTile, scene.ImageWidth(), scene.ImageHeight(), flags.tileSize, flags.spp, flags.numWorker, []string{"primal"})
			}

			var result *buffer.Collection
			if flags.average != "" {
				limiter := &average.TimeLimited{Timeout: parseTimeout(flags.average)}
				collection, passes := limiter.Run(scene.ImageWidth(), scene.ImageHeight(), render)
				fmt.Fprintf(cmd.OutOrStdout(), "averaged %d passes\n", passes)
				result = collection
			} else {
				result = render()
			}

			return writeOutput(result, flags.output)
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum bounce depth (0 = unbounded)")
	cmd.Flags().IntVar(&minDepth, "min-depth", 0, "first depth at which contributions count (0 = every depth)")
	cmd.Flags().BoolVarP(&noNEE, "primitive", "p", false, "disable next-event estimation")

	return cmd
}
