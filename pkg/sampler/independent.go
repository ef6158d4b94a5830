package sampler

import (
	"math/rand"

	"github.com/lumenrender/lumen/pkg/core"
)

// IndependentSampler draws independent uniform [0,1) samples. Each tile
// gets its own instance seeded deterministically from the tile index, the
// way the teacher seeds per-tile RNGs (rand.New(rand.NewSource(id+42))).
type IndependentSampler struct {
	rnd *rand.Rand
}

// NewIndependentSampler wraps an existing *rand.Rand. Seeding is the
// caller's responsibility so callers can keep per-tile determinism.
func NewIndependentSampler(rnd *rand.Rand) *IndependentSampler {
	return &IndependentSampler{rnd: rnd}
}

// Next1D returns a uniform sample in [0, 1).
func (s *IndependentSampler) Next1D() float64 {
	return s.rnd.Float64()
}

// Next2D returns two independent uniform samples in [0, 1).
func (s *IndependentSampler) Next2D() core.Vec2 {
	return core.NewVec2(s.rnd.Float64(), s.rnd.Float64())
}
