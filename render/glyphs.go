package render

// shadeRamp orders the 12 shading glyphs from sparsest to densest.
const shadeRamp = ".,-~:;=!*#$@"

// Band groups shading glyphs that are colored at the same intensity
// level.
type Band int

const (
	// BandNone marks glyphs outside the ramp, i.e. the blank cell
	BandNone Band = iota - 1
	// BandLow covers the sparse glyphs . , -
	BandLow
	// BandMid covers ~ : ; =
	BandMid
	// BandHigh covers ! * # $ @
	BandHigh
)

// ShadeGlyph selects the ramp glyph for a scaled luminance value.
// Negative luminance faces away from the light and collapses to the
// sparsest glyph; values past the ramp end saturate at the densest.
func ShadeGlyph(lum int) byte {
	if lum < 0 {
		lum = 0
	}
	if lum >= len(shadeRamp) {
		lum = len(shadeRamp) - 1
	}
	return shadeRamp[lum]
}

// GlyphBand classifies a glyph into its intensity band. Color assignment
// depends only on the final glyph, never on the raw luminance that
// produced it.
func GlyphBand(ch byte) Band {
	switch ch {
	case '.', ',', '-':
		return BandLow
	case '~', ':', ';', '=':
		return BandMid
	case '!', '*', '#', '$', '@':
		return BandHigh
	}
	return BandNone
}
