package render

import (
	"fmt"
	"io"

	"github.com/lixenwraith/donut/constants"
)

// sgrReset clears all attributes after each colored glyph so color never
// bleeds between cells.
var sgrReset = []byte("\x1b[0m")

// EncodeFrame writes one frame as a byte stream: the 22 rows of 80 cells,
// each row terminated by a newline. With a palette, every non-blank glyph
// is individually wrapped in a truecolor start sequence for its band and
// an SGR reset; blank cells emit a bare space. A nil palette encodes a
// plain frame with no escape sequences at all.
//
// The whole frame is written with a single Write call.
func EncodeFrame(w io.Writer, f *Frame, p *Palette) error {
	buf := make([]byte, 0, constants.ScreenCells*24)
	for y := 0; y < constants.ScreenHeight; y++ {
		for x := 0; x < constants.ScreenWidth; x++ {
			ch := f.Glyph(x, y)
			band := GlyphBand(ch)
			if p == nil || band == BandNone {
				buf = append(buf, ch)
				continue
			}
			r, g, b := p.Level(band).RGB()
			buf = append(buf, fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)...)
			buf = append(buf, ch)
			buf = append(buf, sgrReset...)
		}
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}
