package render

import (
	"testing"

	"github.com/lixenwraith/donut/constants"
)

func TestNewFrameBlank(t *testing.T) {
	f := NewFrame()

	for y := 0; y < constants.ScreenHeight; y++ {
		for x := 0; x < constants.ScreenWidth; x++ {
			if got := f.Glyph(x, y); got != ' ' {
				t.Errorf("Expected blank glyph at (%d, %d), got %q", x, y, got)
			}
			if got := f.Depth(x, y); got != 0 {
				t.Errorf("Expected zero depth at (%d, %d), got %v", x, y, got)
			}
		}
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"Origin", 0, 0, 0},
		{"End of first row", 79, 0, 79},
		{"Start of second row", 0, 1, 80},
		{"Center", 40, 12, 1000},
		{"Last cell", 79, 21, 1759},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.x, tt.y); got != tt.want {
				t.Errorf("Expected index %d for (%d, %d), got %d", tt.want, tt.x, tt.y, got)
			}
		})
	}
}

func TestClearResetsEverything(t *testing.T) {
	f := NewFrame()
	f.chars[Index(10, 5)] = '@'
	f.depth[Index(10, 5)] = 0.25

	f.Clear()

	if got := f.Glyph(10, 5); got != ' ' {
		t.Errorf("Expected blank glyph after Clear, got %q", got)
	}
	if got := f.Depth(10, 5); got != 0 {
		t.Errorf("Expected zero depth after Clear, got %v", got)
	}
}

func TestOutOfRangeReads(t *testing.T) {
	f := NewFrame()
	f.chars[Index(0, 1)] = '@' // flat offset 80, where (80, 0) would alias without the guard

	tests := []struct {
		name string
		x, y int
	}{
		{"Negative x", -1, 5},
		{"Negative y", 5, -1},
		{"Past width", constants.ScreenWidth, 0},
		{"Past height", 0, constants.ScreenHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Glyph(tt.x, tt.y); got != ' ' {
				t.Errorf("Expected blank glyph for out-of-range (%d, %d), got %q", tt.x, tt.y, got)
			}
			if got := f.Depth(tt.x, tt.y); got != 0 {
				t.Errorf("Expected zero depth for out-of-range (%d, %d), got %v", tt.x, tt.y, got)
			}
		})
	}
}
