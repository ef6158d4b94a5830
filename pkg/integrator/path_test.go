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

func TestPathIntegrator_DirectLightIsNonNegative(t *testing.T) {
	scene := scenetest.NewFurnaceScene(core.NewColorValue(10), core.NewColorValue(0.5))
	p := &integrator.PathIntegrator{NextEventEstimation: true}
	samp := sampler.NewIndependentSampler(rand.New(rand.NewSource(1)))

	ray := scene.Camera().Generate(core.Vec2{X: 2, Y: 2})
	color := p.SamplePixel(scene, samp, ray)

	assert.GreaterOrEqual(t, color.R, 0.0)
	assert.False(t, color.R != color.R) // not NaN
}

func TestPathIntegrator_MaxDepthOneIsNonNegative(t *testing.T) {
	scene := scenetest.NewFurnaceScene(core.NewColorValue(10), core.NewColorValue(0.5))
	maxDepth := 1
	p := &integrator.PathIntegrator{MaxDepth: &maxDepth, NextEventEstimation: true}
	samp := sampler.NewIndependentSampler(rand.New(rand.NewSource(1)))

	total := core.ColorBlack
	for i := 0; i < 64; i++ {
		ray := scene.Camera().Generate(core.Vec2{X: 2, Y: 2})
		total = total.Add(p.SamplePixel(scene, samp, ray))
	}

	assert.GreaterOrEqual(t, total.R, 0.0)
}

func TestPathIntegrator_ZeroValueConfigDoesNotPanic(t *testing.T) {
	p := &integrator.PathIntegrator{}
	scene := scenetest.NewFurnaceScene(core.NewColorValue(1), core.NewColorValue(0.9))
	samp := sampler.NewIndependentSampler(rand.New(rand.NewSource(2)))
	ray := scene.Camera().Generate(core.Vec2{X: 1, Y: 1})

	assert.NotPanics(t, func() { p.SamplePixel(scene, samp, ray) })
}
