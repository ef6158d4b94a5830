package sampler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaySampler_AcceptKeepsProposedValues(t *testing.T) {
	s := NewReplaySampler(rand.New(rand.NewSource(1)), DefaultKelemenMutator())

	s.LargeStep = true
	first := s.Next1D()
	s.Accept()

	// After accept, the chain state at that index holds the accepted value.
	s.LargeStep = false
	again := s.values[0].value
	require.Equal(t, first, again)
}

func TestReplaySampler_RejectRestoresPriorValues(t *testing.T) {
	s := NewReplaySampler(rand.New(rand.NewSource(2)), DefaultKelemenMutator())

	s.LargeStep = true
	v0 := s.Next1D()
	s.Accept()

	s.LargeStep = false
	_ = s.Next1D() // mutate coordinate 0, recorded in backup
	s.Reject()

	assert.Equal(t, v0, s.values[0].value)
	assert.Empty(t, s.backup)
}

func TestReplaySampler_Next2DAdvancesIndexByTwo(t *testing.T) {
	s := NewReplaySampler(rand.New(rand.NewSource(3)), DefaultKelemenMutator())
	s.LargeStep = true
	v := s.Next2D()
	assert.Equal(t, 2, s.index)
	assert.NotEqual(t, v.X, v.Y)
}

func TestKelemenMutator_StaysInUnitInterval(t *testing.T) {
	m := DefaultKelemenMutator()
	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		v := rnd.Float64()
		r := rnd.Float64()
		out := m.Mutate(v, r)
		assert.GreaterOrEqual(t, out, 0.0)
		assert.Less(t, out, 1.0)
	}
}
