package sampler

import (
	"math/rand"

	"github.com/lumenrender/lumen/pkg/core"
)

type replayCoordinate struct {
	value    float64
	modified int
}

type backupEntry struct {
	index int
	value float64
}

// ReplaySampler is a primary-sample-space sampler for Metropolis light
// transport. Every coordinate read through Next1D/Next2D is lazily
// extended and then brought "forward in time" by replaying either a fresh
// draw (large step) or a chain of small-step mutations since the last
// large-step time. Accept/Reject commit or roll back the coordinates
// touched since the previous accept.
type ReplaySampler struct {
	rnd       *rand.Rand
	mutator   Mutator
	values    []replayCoordinate
	backup    []backupEntry
	time      int
	timeLarge int
	index     int

	// LargeStep selects whether the next proposal is a large step (every
	// touched coordinate redrawn fresh) or a small step (mutated from its
	// current value). Set by the MCMC driver before each proposal.
	LargeStep bool
}

// NewReplaySampler creates a ReplaySampler using mutator for small steps.
func NewReplaySampler(rnd *rand.Rand, mutator Mutator) *ReplaySampler {
	if mutator == nil {
		mutator = DefaultKelemenMutator()
	}
	return &ReplaySampler{rnd: rnd, mutator: mutator}
}

// Next1D returns the coordinate at the current read index and advances it.
func (s *ReplaySampler) Next1D() float64 {
	v := s.sample(s.index)
	s.index++
	return v
}

// Next2D returns two consecutive coordinates and advances the read index
// past both.
func (s *ReplaySampler) Next2D() core.Vec2 {
	v1 := s.sample(s.index)
	v2 := s.sample(s.index + 1)
	s.index += 2
	return core.NewVec2(v1, v2)
}

// Accept commits the current proposal: the backup is discarded, the
// last-large-step time advances if this proposal was a large step, and
// global time advances. The read index resets for the next proposal.
func (s *ReplaySampler) Accept() {
	s.backup = s.backup[:0]
	if s.LargeStep {
		s.timeLarge = s.time
	}
	s.time++
	s.index = 0
}

// Reject rolls back every coordinate touched since the last Accept, then
// advances global time. The read index resets for the next proposal.
func (s *ReplaySampler) Reject() {
	for _, b := range s.backup {
		s.values[b.index].value = b.value
	}
	s.backup = s.backup[:0]
	s.time++
	s.index = 0
}

func (s *ReplaySampler) sample(i int) float64 {
	for i >= len(s.values) {
		s.values = append(s.values, replayCoordinate{value: s.rand(), modified: 0})
	}

	coord := &s.values[i]
	if coord.modified < s.time {
		if s.LargeStep {
			s.backup = append(s.backup, backupEntry{i, coord.value})
			coord.value = s.rand()
			coord.modified = s.time
		} else {
			if coord.modified < s.timeLarge {
				coord.value = s.rand()
				coord.modified = s.timeLarge
			}

			for coord.modified+1 < s.time {
				coord.value = s.mutator.Mutate(coord.value, s.rand())
				coord.modified++
			}

			s.backup = append(s.backup, backupEntry{i, coord.value})
			coord.value = s.mutator.Mutate(coord.value, s.rand())
			coord.modified = s.time
		}
	}

	return coord.value
}

func (s *ReplaySampler) rand() float64 {
	return s.rnd.Float64()
}
