// Package average implements the time-limited multi-pass averaging
// wrapper: run a full render pass repeatedly within a time budget and
// average the results, rather than committing to a single pass's sample
// count up front. Grounded on main.rs's `-a`/`--average` flag, which wraps
// whatever integrator was selected in `rustlight::integrators::avg::
// IntegratorAverage{time_out, integrator}` and keeps calling
// `int.compute(&scene)` until the deadline.
package average

import (
	"time"

	"github.com/lumenrender/lumen/pkg/buffer"
)

// PassFunc renders one full pass and returns its primal-channel estimate.
type PassFunc func() *buffer.Collection

// TimeLimited repeatedly calls render, accumulating a running mean of its
// "primal" channel, until either MaxPasses passes have run or Timeout has
// elapsed. A zero Timeout sets no time limit; if MaxPasses is also zero,
// Run stops after a single pass rather than running until cancelled. The
// averaged image is returned only when Run ends, not after each pass.
type TimeLimited struct {
	Timeout   time.Duration
	MaxPasses int
}

// Run drives render within the configured budget, returning the averaged
// Collection and the number of passes actually completed.
func (t *TimeLimited) Run(width, height int, render PassFunc) (*buffer.Collection, int) {
	var deadline time.Time
	if t.Timeout > 0 {
		deadline = time.Now().Add(t.Timeout)
	}

	sum := buffer.NewCollection(width, height, "primal")
	passes := 0

	for {
		if t.MaxPasses > 0 && passes >= t.MaxPasses {
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}

		pass := render()
		sum.AccumulateBitmap(pass)
		passes++

		if deadline.IsZero() && t.MaxPasses <= 0 && passes >= 1 {
			break
		}
	}

	if passes == 0 {
		return sum, 0
	}

	result := buffer.NewCollection(width, height, "primal")
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			result.Set(x, y, "primal", sum.Get(x, y, "primal").Div(float64(passes)))
		}
	}
	return result, passes
}
