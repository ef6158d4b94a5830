package mc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenrender/lumen/pkg/core"
	"github.com/lumenrender/lumen/pkg/integrator"
	"github.com/lumenrender/lumen/pkg/mc"
	"github.com/lumenrender/lumen/pkg/scenecap/scenetest"
)

func TestNewTileGrid_CoversWholeImageExactly(t *testing.T) {
	tiles := mc.NewTileGrid(10, 7, 4)

	covered := make(map[[2]int]bool)
	for _, tile := range tiles {
		b := tile.Bounds
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				assert.False(t, covered[[2]int{x, y}], "pixel covered twice")
				covered[[2]int{x, y}] = true
			}
		}
	}
	assert.Len(t, covered, 10*7)
}

func TestNewTileGrid_DeterministicSeeding(t *testing.T) {
	a := mc.NewTileGrid(10, 10, 4)
	b := mc.NewTileGrid(10, 10, 4)
	for i := range a {
		assert.Equal(t, a[i].Random.Int63(), b[i].Random.Int63())
	}
}

func TestRenderImage_ProducesFiniteValues(t *testing.T) {
	scene := scenetest.NewFurnaceScene(core.NewColorValue(5), core.NewColorValue(0.6))
	path := &integrator.PathIntegrator{NextEventEstimation: true}
	driver := &mc.PixelDriver{Path: path}

	result := mc.RenderImage(scene, driver.RenderTile, scene.ImageWidth(), scene.ImageHeight(), 2, 4, 1, []string{"primal"})

	for y := 0; y < scene.ImageHeight(); y++ {
		for x := 0; x < scene.ImageWidth(); x++ {
			c := result.Get(x, y, "primal")
			assert.GreaterOrEqual(t, c.R, 0.0)
		}
	}
}
