package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette is one dark/normal/bright color triple. A palette is selected
// once at startup and never mutated afterwards.
type Palette struct {
	Dark   tcell.Color
	Normal tcell.Color
	Bright tcell.Color
}

// Level returns the palette color for an intensity band. BandNone maps
// to the terminal default so blank cells stay uncolored.
func (p Palette) Level(band Band) tcell.Color {
	switch band {
	case BandLow:
		return p.Dark
	case BandMid:
		return p.Normal
	case BandHigh:
		return p.Bright
	}
	return tcell.ColorDefault
}

// RGB color triples per hue - dark/normal/bright levels
var (
	PaletteGreen = Palette{
		Dark:   tcell.NewRGBColor(0, 100, 0),
		Normal: tcell.NewRGBColor(0, 180, 0),
		Bright: tcell.NewRGBColor(100, 255, 100),
	}
	PaletteRed = Palette{
		Dark:   tcell.NewRGBColor(100, 0, 0),
		Normal: tcell.NewRGBColor(180, 0, 0),
		Bright: tcell.NewRGBColor(255, 100, 100),
	}
	PaletteBlue = Palette{
		Dark:   tcell.NewRGBColor(0, 0, 100),
		Normal: tcell.NewRGBColor(0, 0, 180),
		Bright: tcell.NewRGBColor(100, 100, 255),
	}
	PaletteCyan = Palette{
		Dark:   tcell.NewRGBColor(0, 100, 100),
		Normal: tcell.NewRGBColor(0, 180, 180),
		Bright: tcell.NewRGBColor(100, 255, 255),
	}
	PaletteMagenta = Palette{
		Dark:   tcell.NewRGBColor(100, 0, 100),
		Normal: tcell.NewRGBColor(180, 0, 180),
		Bright: tcell.NewRGBColor(255, 100, 255),
	}
	PaletteYellow = Palette{
		Dark:   tcell.NewRGBColor(100, 100, 0),
		Normal: tcell.NewRGBColor(180, 180, 0),
		Bright: tcell.NewRGBColor(255, 255, 100),
	}
	PaletteWhite = Palette{
		Dark:   tcell.NewRGBColor(100, 100, 100),
		Normal: tcell.NewRGBColor(180, 180, 180),
		Bright: tcell.NewRGBColor(255, 255, 255),
	}
)

// paletteNames maps normalized color names to palettes. The German
// synonyms select the same palette values as the English names.
var paletteNames = map[string]Palette{
	"green":   PaletteGreen,
	"gruen":   PaletteGreen,
	"red":     PaletteRed,
	"rot":     PaletteRed,
	"blue":    PaletteBlue,
	"blau":    PaletteBlue,
	"cyan":    PaletteCyan,
	"magenta": PaletteMagenta,
	"yellow":  PaletteYellow,
	"gelb":    PaletteYellow,
	"white":   PaletteWhite,
	"weiss":   PaletteWhite,
}

// PaletteNames lists the English color names for usage and warning text.
var PaletteNames = []string{"green", "red", "blue", "cyan", "magenta", "yellow", "white"}

// PaletteFor looks up a palette by name, case-insensitively. The boolean
// reports whether the name was recognized; the green palette is returned
// either way so callers can fall back without a second lookup.
func PaletteFor(name string) (Palette, bool) {
	p, ok := paletteNames[strings.ToLower(name)]
	if !ok {
		return PaletteGreen, false
	}
	return p, true
}
