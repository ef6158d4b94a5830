package integrator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenrender/lumen/pkg/core"
	"github.com/lumenrender/lumen/pkg/integrator"
	"github.com/lumenrender/lumen/pkg/sampler"
	"github.com/lumenrender/lumen/pkg/scenecap/scenetest"
)

func TestGradientPathIntegrator_PrimalNonNegativeGradientNotNaN(t *testing.T) {
	scene := scenetest.NewFurnaceScene(core.NewColorValue(5), core.NewColorValue(0.7))
	path := &integrator.PathIntegrator{NextEventEstimation: true}
	g := integrator.NewGradientPathIntegrator(path)
	samp := sampler.NewIndependentSampler(rand.New(rand.NewSource(7)))

	result := g.SamplePixel(scene, samp, core.Vec2{X: 2, Y: 2})

	assert.GreaterOrEqual(t, result.Primal.R, 0.0)
	assert.False(t, result.GradientX.R != result.GradientX.R)
}

func TestGradientPathIntegrator_EdgePixelSkipsOutOfBoundsOffsets(t *testing.T) {
	scene := scenetest.NewFurnaceScene(core.NewColorValue(5), core.NewColorValue(0.7))
	path := &integrator.PathIntegrator{NextEventEstimation: true}
	g := integrator.NewGradientPathIntegrator(path)
	samp := sampler.NewIndependentSampler(rand.New(rand.NewSource(8)))

	assert.NotPanics(t, func() {
		g.SamplePixel(scene, samp, core.Vec2{X: 0, Y: 0})
	})
}
