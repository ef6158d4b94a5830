package bsdf_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenrender/lumen/pkg/bsdf"
	"github.com/lumenrender/lumen/pkg/bsdf/bsdftest"
	"github.com/lumenrender/lumen/pkg/core"
)

func TestBlend_PdfAveragesChildren(t *testing.T) {
	a := bsdftest.NewLambertian(core.NewColor(0.8, 0, 0), rand.New(rand.NewSource(1)))
	b := bsdftest.NewLambertian(core.NewColor(0, 0.8, 0), rand.New(rand.NewSource(2)))
	blend := bsdf.NewBlend(a, b)

	dIn := core.NewVec3(0, 0, 1)
	dOut := core.NewVec3(0, 0, 1)

	pa := a.Pdf(core.Vec2{}, false, dIn, dOut, core.DomainSolidAngleValue)
	pb := b.Pdf(core.Vec2{}, false, dIn, dOut, core.DomainSolidAngleValue)
	pBlend := blend.Pdf(core.Vec2{}, false, dIn, dOut, core.DomainSolidAngleValue)

	assert.InDelta(t, (pa.Value+pb.Value)*0.5, pBlend.Value, 1e-9)
}

func TestBlend_PanicsOnSmoothChild(t *testing.T) {
	a := bsdftest.NewLambertian(core.ColorWhite, rand.New(rand.NewSource(1)))
	blend := bsdf.NewBlend(a, bsdftest.NewMirror())

	require.Panics(t, func() {
		_, _ = blend.Sample(core.Vec2{}, false, core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5))
	})
}

func TestBlend_SampleWeightMatchesCompositeEvalOverPdf(t *testing.T) {
	a := bsdftest.NewLambertian(core.NewColor(0.5, 0.5, 0.5), rand.New(rand.NewSource(7)))
	b := bsdftest.NewLambertian(core.NewColor(0.5, 0.5, 0.5), rand.New(rand.NewSource(8)))
	blend := bsdf.NewBlend(a, b)

	dIn := core.NewVec3(0, 0, 1)
	sampled, ok := blend.Sample(core.Vec2{}, false, dIn, core.NewVec2(0.1, 0.5))
	require.True(t, ok)

	eval := blend.Eval(core.Vec2{}, false, dIn, sampled.Direction, core.DomainSolidAngleValue)
	want := eval.Div(sampled.PDF.Value)
	assert.InDelta(t, want.R, sampled.Weight.R, 1e-9)
}
