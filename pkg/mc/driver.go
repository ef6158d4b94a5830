package mc

import (
	"github.com/lumenrender/lumen/pkg/buffer"
	"github.com/lumenrender/lumen/pkg/core"
	"github.com/lumenrender/lumen/pkg/integrator"
	"github.com/lumenrender/lumen/pkg/sampler"
	"github.com/lumenrender/lumen/pkg/scenecap"
)

// PixelDriver draws spp jittered samples per pixel within a tile's bounds
// and accumulates them into a buffer.Collection's "primal" channel,
// dividing by the sample count so the channel holds a running pixel
// average rather than a sum. Grounded on
// pkg/renderer/tile_renderer.go's RenderTileBounds loop (per-pixel loop
// over a tile's bounds, camera.GetRay + integrator.RayColor +
// accumulate), generalized off its adaptive-sampling convergence check
// (not carried forward — §9's Non-goals exclude adaptive sampling).
type PixelDriver struct {
	Path *integrator.PathIntegrator
}

// RenderTile draws tile.Random-seeded jittered samples for every pixel in
// tile's bounds and accumulates them into dst's "primal" channel.
func (d *PixelDriver) RenderTile(scene scenecap.Scene, tile *Tile, dst *buffer.Collection, spp int) {
	samp := sampler.NewIndependentSampler(tile.Random)

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			sum := core.ColorBlack
			for s := 0; s < spp; s++ {
				jitter := samp.Next2D()
				pixel := core.Vec2{X: float64(x) + jitter.X, Y: float64(y) + jitter.Y}
				ray := scene.Camera().Generate(pixel)
				sum = sum.Add(d.Path.SamplePixel(scene, samp, ray))
			}
			dst.Set(x, y, "primal", sum.Div(float64(spp)))
		}
	}
}

// GradientPixelDriver is PixelDriver's counterpart for the gradient-domain
// estimator: it writes the primal, gradient_x, and gradient_y channels
// together so reconstruction sees a consistent sample count across all
// three.
type GradientPixelDriver struct {
	Gradient *integrator.GradientPathIntegrator
}

// RenderTile draws spp samples per pixel in tile's bounds, writing
// averaged primal/gradient_x/gradient_y channels into dst.
func (d *GradientPixelDriver) RenderTile(scene scenecap.Scene, tile *Tile, dst *buffer.Collection, spp int) {
	samp := sampler.NewIndependentSampler(tile.Random)

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			primalSum := core.ColorBlack
			gxSum := core.ColorBlack
			gySum := core.ColorBlack
			for s := 0; s < spp; s++ {
				jitter := samp.Next2D()
				pixel := core.Vec2{X: float64(x) + jitter.X, Y: float64(y) + jitter.Y}
				result := d.Gradient.SamplePixel(scene, samp, pixel)
				primalSum = primalSum.Add(result.Primal)
				gxSum = gxSum.Add(result.GradientX)
				gySum = gySum.Add(result.GradientY)
			}
			n := float64(spp)
			dst.Set(x, y, "primal", primalSum.Div(n))
			dst.Set(x, y, "gradient_x", gxSum.Div(n))
			dst.Set(x, y, "gradient_y", gySum.Div(n))
		}
	}
}
