// Package buffer provides the named multi-channel image grid the Monte
// Carlo driver and Poisson reconstruction pass data through: primal,
// gradient_x, gradient_y, very_direct, and the per-subset/variance
// channels reconstruction derives from them.
package buffer

import "github.com/lumenrender/lumen/pkg/core"

// Collection is a fixed-size grid of named Color channels.
type Collection struct {
	Width, Height int
	channels      map[string][]core.Color
}

// NewCollection creates an empty collection of the given size with the
// listed channels pre-registered.
func NewCollection(width, height int, names ...string) *Collection {
	c := &Collection{Width: width, Height: height, channels: make(map[string][]core.Color)}
	for _, n := range names {
		c.Register(n)
	}
	return c
}

func (c *Collection) index(x, y int) int {
	return y*c.Width + x
}

// Register adds a new, zero-initialized channel. Registering an existing
// channel is a no-op.
func (c *Collection) Register(name string) {
	if _, ok := c.channels[name]; ok {
		return
	}
	c.channels[name] = make([]core.Color, c.Width*c.Height)
}

// HasChannel reports whether name has been registered.
func (c *Collection) HasChannel(name string) bool {
	_, ok := c.channels[name]
	return ok
}

// Reset zeroes every pixel in every registered channel.
func (c *Collection) Reset() {
	for name := range c.channels {
		ch := c.channels[name]
		for i := range ch {
			ch[i] = core.ColorBlack
		}
	}
}

// Get returns the value of channel name at (x, y).
func (c *Collection) Get(x, y int, name string) core.Color {
	return c.channels[name][c.index(x, y)]
}

// Set overwrites the value of channel name at (x, y).
func (c *Collection) Set(x, y int, name string, v core.Color) {
	c.channels[name][c.index(x, y)] = v
}

// Accumulate adds v into channel name at (x, y).
func (c *Collection) Accumulate(x, y int, v core.Color, name string) {
	idx := c.index(x, y)
	c.channels[name][idx] = c.channels[name][idx].Add(v)
}

// AccumulateBitmap adds every channel other shares with c, pixel for
// pixel, into c's matching channels. Channels present only in other are
// ignored.
func (c *Collection) AccumulateBitmap(other *Collection) {
	for name, ch := range c.channels {
		src, ok := other.channels[name]
		if !ok {
			continue
		}
		for i := range ch {
			ch[i] = ch[i].Add(src[i])
		}
	}
}

// AccumulateBitmapBuffer adds src's srcChannel into c's own dstChannel,
// pixel for pixel. src and c may be the same collection.
func (c *Collection) AccumulateBitmapBuffer(src *Collection, srcChannel, dstChannel string) {
	dst := c.channels[dstChannel]
	source := src.channels[srcChannel]
	for i := range dst {
		dst[i] = dst[i].Add(source[i])
	}
}

// RegisterMeanVariance computes, per pixel, the sample mean and variance
// across src's sourceNames channels, registering and writing
// destName+"_mean" and destName+"_variance" on c.
func (c *Collection) RegisterMeanVariance(destName string, src *Collection, sourceNames []string) {
	meanName := destName + "_mean"
	varName := destName + "_variance"
	c.Register(meanName)
	c.Register(varName)

	n := float64(len(sourceNames))
	if n == 0 {
		return
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			sum := core.ColorBlack
			for _, name := range sourceNames {
				sum = sum.Add(src.Get(x, y, name))
			}
			mean := sum.Scale(1.0 / n)

			if n > 1 {
				var varSum core.Color
				for _, name := range sourceNames {
					d := src.Get(x, y, name).Subtract(mean)
					varSum = varSum.Add(d.Mul(d))
				}
				c.Set(x, y, varName, varSum.Scale(1.0/(n-1)))
			}
			c.Set(x, y, meanName, mean)
		}
	}
}

// Rename moves a channel's data to a new key, as the bagging reconstruction
// does to turn "primal_mean" into the canonical "primal" channel.
func (c *Collection) Rename(oldName, newName string) {
	ch := c.channels[oldName]
	delete(c.channels, oldName)
	c.channels[newName] = ch
}
