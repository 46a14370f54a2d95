package render

import "testing"

func TestShadeGlyph(t *testing.T) {
	tests := []struct {
		name string
		lum  int
		want byte
	}{
		{"Strongly negative", -9, '.'},
		{"Negative", -1, '.'},
		{"Zero", 0, '.'},
		{"Low", 2, '-'},
		{"Mid", 5, ';'},
		{"High", 8, '*'},
		{"Ramp end", 11, '@'},
		{"Past ramp end", 12, '@'},
		{"Far past ramp end", 40, '@'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShadeGlyph(tt.lum); got != tt.want {
				t.Errorf("Expected %q for luminance %d, got %q", tt.want, tt.lum, got)
			}
		})
	}
}

func TestGlyphBand(t *testing.T) {
	tests := []struct {
		name  string
		glyph byte
		want  Band
	}{
		{"Dot", '.', BandLow},
		{"Comma", ',', BandLow},
		{"Dash", '-', BandLow},
		{"Tilde", '~', BandMid},
		{"Colon", ':', BandMid},
		{"Semicolon", ';', BandMid},
		{"Equals", '=', BandMid},
		{"Bang", '!', BandHigh},
		{"Star", '*', BandHigh},
		{"Hash", '#', BandHigh},
		{"Dollar", '$', BandHigh},
		{"At", '@', BandHigh},
		{"Blank", ' ', BandNone},
		{"Outside ramp", 'x', BandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlyphBand(tt.glyph); got != tt.want {
				t.Errorf("Expected band %d for glyph %q, got %d", tt.want, tt.glyph, got)
			}
		})
	}
}

func TestRampGlyphsAllBanded(t *testing.T) {
	// Every reachable luminance maps to a glyph with a band, so a lit
	// cell is always colored.
	for lum := -15; lum <= 15; lum++ {
		if GlyphBand(ShadeGlyph(lum)) == BandNone {
			t.Errorf("Expected luminance %d to map to a banded glyph, got %q", lum, ShadeGlyph(lum))
		}
	}
}

func TestBandsAreMonotonic(t *testing.T) {
	// Band never decreases as luminance increases across the ramp.
	prev := GlyphBand(shadeRamp[0])
	for i := 1; i < len(shadeRamp); i++ {
		band := GlyphBand(shadeRamp[i])
		if band < prev {
			t.Errorf("Expected non-decreasing bands across the ramp, got %d after %d at index %d", band, prev, i)
		}
		prev = band
	}
}
