package imageio

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/lumenrender/lumen/pkg/buffer"
)

// gammaEncode converts a linear radiance value to an 8-bit sRGB-gamma
// channel, matching save_png's to_rgba: clamp to [0,1], raise to 1/2.2,
// scale by 255.
func gammaEncode(v float64) uint8 {
	v = math.Min(v, 1.0)
	if v < 0 {
		v = 0
	}
	return uint8(math.Pow(v, 1.0/2.2) * 255.0)
}

// WritePNG encodes channel of collection as an 8-bit PNG, using the
// standard library's image/png encoder in place of the original's `image`
// crate — same concern (gamma-encode linear HDR to an LDR raster and hand
// it to a PNG encoder), stdlib covers this without needing a third-party
// image codec the rest of the renderer has no other use for.
func WritePNG(w io.Writer, collection *buffer.Collection, channel string) error {
	img := image.NewRGBA(image.Rect(0, 0, collection.Width, collection.Height))
	for y := 0; y < collection.Height; y++ {
		for x := 0; x < collection.Width; x++ {
			c := collection.Get(x, y, channel)
			img.SetRGBA(x, y, color.RGBA{
				R: gammaEncode(c.R),
				G: gammaEncode(c.G),
				B: gammaEncode(c.B),
				A: 255,
			})
		}
	}
	return png.Encode(w, img)
}
