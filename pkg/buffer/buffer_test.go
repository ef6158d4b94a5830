package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenrender/lumen/pkg/buffer"
	"github.com/lumenrender/lumen/pkg/core"
)

func TestCollection_AccumulateAdds(t *testing.T) {
	c := buffer.NewCollection(2, 2, "primal")
	c.Accumulate(0, 0, core.NewColor(1, 0, 0), "primal")
	c.Accumulate(0, 0, core.NewColor(0, 1, 0), "primal")
	assert.Equal(t, core.NewColor(1, 1, 0), c.Get(0, 0, "primal"))
}

func TestCollection_RenameMovesData(t *testing.T) {
	c := buffer.NewCollection(1, 1, "primal_mean")
	c.Set(0, 0, "primal_mean", core.NewColor(0.5, 0.5, 0.5))
	c.Rename("primal_mean", "primal")
	assert.False(t, c.HasChannel("primal_mean"))
	assert.Equal(t, core.NewColor(0.5, 0.5, 0.5), c.Get(0, 0, "primal"))
}

func TestCollection_RegisterMeanVariance(t *testing.T) {
	src := buffer.NewCollection(1, 1, "primal_0", "primal_1")
	src.Set(0, 0, "primal_0", core.NewColor(1, 1, 1))
	src.Set(0, 0, "primal_1", core.NewColor(3, 3, 3))

	dst := buffer.NewCollection(1, 1)
	dst.RegisterMeanVariance("primal", src, []string{"primal_0", "primal_1"})

	assert.Equal(t, core.NewColor(2, 2, 2), dst.Get(0, 0, "primal_mean"))
	assert.Equal(t, core.NewColor(2, 2, 2), dst.Get(0, 0, "primal_variance"))
}

func TestCollection_AccumulateBitmapBuffer(t *testing.T) {
	src := buffer.NewCollection(1, 1, "recons")
	src.Set(0, 0, "recons", core.NewColor(0.2, 0.2, 0.2))

	dst := buffer.NewCollection(1, 1, "primal")
	dst.AccumulateBitmapBuffer(src, "recons", "primal")
	assert.Equal(t, core.NewColor(0.2, 0.2, 0.2), dst.Get(0, 0, "primal"))
}
