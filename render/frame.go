// Package render implements the per-frame torus pipeline: rasterization
// of the surface into a glyph/depth frame, and composition of that frame
// into terminal output.
package render

import "github.com/lixenwraith/donut/constants"

// Frame holds one frame's glyph grid and its parallel inverse-depth grid.
// Both are flat row-major arrays of constants.ScreenCells entries. A frame
// is fully rewritten by every rasterization pass; nothing survives between
// frames.
type Frame struct {
	chars [constants.ScreenCells]byte
	depth [constants.ScreenCells]float64
}

// NewFrame returns a cleared frame.
func NewFrame() *Frame {
	f := &Frame{}
	f.Clear()
	return f
}

// Index maps viewport coordinates to the flat buffer offset.
func Index(x, y int) int {
	return x + constants.ScreenWidth*y
}

// Clear resets every cell to a blank glyph and zero depth.
func (f *Frame) Clear() {
	for i := range f.chars {
		f.chars[i] = ' '
		f.depth[i] = 0
	}
}

// Glyph returns the glyph at the given cell. Out-of-range coordinates
// read as blank.
func (f *Frame) Glyph(x, y int) byte {
	if x < 0 || x >= constants.ScreenWidth || y < 0 || y >= constants.ScreenHeight {
		return ' '
	}
	return f.chars[Index(x, y)]
}

// Depth returns the stored inverse depth at the given cell, or zero for
// out-of-range coordinates. Higher values are nearer the viewer.
func (f *Frame) Depth(x, y int) float64 {
	if x < 0 || x >= constants.ScreenWidth || y < 0 || y >= constants.ScreenHeight {
		return 0
	}
	return f.depth[Index(x, y)]
}
