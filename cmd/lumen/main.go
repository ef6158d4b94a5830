// Command lumen is the renderer's CLI entry point: a cobra root command
// with one subcommand per integrator, grounded on
// original_source/src/main.rs's clap subcommand table (`path`,
// `gradient-path`, `pssmlt`), translated to the pack's cobra idiom rather
// than the teacher's stdlib-flag main.go (the teacher never needed
// subcommands).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
