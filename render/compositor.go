package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/donut/constants"
)

// Surface is the subset of tcell.Screen the compositor draws on. A tcell
// screen satisfies it directly; tests substitute a cell recorder.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Compositor turns a populated frame into one flushed screen update
// using a fixed palette.
type Compositor struct {
	palette Palette
}

// NewCompositor creates a compositor bound to the given palette.
func NewCompositor(palette Palette) *Compositor {
	return &Compositor{palette: palette}
}

// Compose walks the frame in row-major order, styles every glyph by its
// intensity band, and flushes the surface once. Blank cells keep the
// default style so no color is ever attached to empty space, and each
// frame fully overwrites the previous one.
func (c *Compositor) Compose(f *Frame, s Surface) {
	for y := 0; y < constants.ScreenHeight; y++ {
		for x := 0; x < constants.ScreenWidth; x++ {
			ch := f.Glyph(x, y)
			style := tcell.StyleDefault
			if band := GlyphBand(ch); band != BandNone {
				style = style.Foreground(c.palette.Level(band))
			}
			s.SetContent(x, y, rune(ch), nil, style)
		}
	}
	s.Show()
}
