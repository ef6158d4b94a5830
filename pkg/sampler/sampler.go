// Package sampler provides the pseudo-random number sources integrators
// draw from: a plain independent sampler for standard Monte Carlo
// integration, and a primary-sample-space replay sampler for Metropolis
// light transport.
package sampler

import "github.com/lumenrender/lumen/pkg/core"

// Sampler is the capability every integrator draws random numbers through.
// Implementations decide how those numbers are produced — independently, or
// replayed/mutated from a previous state for MCMC.
type Sampler interface {
	Next1D() float64
	Next2D() core.Vec2
}
