package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumenrender/lumen/internal/imageio"
	"github.com/lumenrender/lumen/internal/logging"
	"github.com/lumenrender/lumen/pkg/buffer"
)

// globalFlags carries the root command's persistent flags, mirroring
// main.rs's scene/nbsamples/nbthreads/image_scale/output/debug/average
// argument set (the positional scene argument selects a built-in scene by
// name rather than parsing a scene-description file: scene-file parsing is
// out of scope per this renderer's capability-only view of Scene, so the
// registry in scenes.go stands in for the original's
// SceneLoaderManager).
type globalFlags struct {
	spp       int
	threads   string
	imgScale  float64
	output    string
	debug     bool
	average   string
	tileSize  int
	numWorker int
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "lumen <subcommand> <scene>",
		Short: "offline physically-based path tracer",
	}

	root.PersistentFlags().IntVarP(&flags.spp, "samples", "n", 32, "samples per pixel")
	root.PersistentFlags().StringVarP(&flags.threads, "threads", "t", "auto", "worker threads ('auto' or a count)")
	root.PersistentFlags().Float64VarP(&flags.imgScale, "scale", "s", 1.0, "image scale factor (parsed but not applied to the render)")
	root.PersistentFlags().StringVarP(&flags.output, "output", "o", "render.pfm", "output image path (.pfm or .png)")
	root.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&flags.average, "average", "a", "", "average passes within a time budget ('inf' or seconds; used by the path subcommand only)")
	root.PersistentFlags().IntVar(&flags.tileSize, "tile-size", 32, "tile edge length in pixels")

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Init(flags.debug)
		flags.numWorker = resolveThreads(flags.threads)
	}

	root.AddCommand(newPathCmd(flags))
	root.AddCommand(newGradientCmd(flags))
	root.AddCommand(newMCMCCmd(flags))

	return root
}

func resolveThreads(spec string) int {
	if spec == "auto" {
		return 0
	}
	n, err := strconv.Atoi(spec)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func parseTimeout(spec string) time.Duration {
	if spec == "" || spec == "inf" {
		return 0
	}
	seconds, err := strconv.ParseFloat(spec, 64)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}

func writeOutput(collection *buffer.Collection, path string) error {
	ext := extOf(path)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".png":
		return imageio.WritePNG(f, collection, "primal")
	case ".pfm":
		return imageio.WritePFM(f, collection, "primal")
	default:
		return fmt.Errorf("lumen: unsupported output extension %q", ext)
	}
}

func extOf(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}
