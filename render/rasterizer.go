package render

import (
	"math"

	"github.com/lixenwraith/donut/constants"
)

// Rasterize sweeps the torus surface for the given rotation angles and
// populates the frame's glyph and depth grids. It is a pure function of
// (a, b): the frame is cleared first and no other state is read.
//
// The surface is the standard tube torus with tube radius 1 and sweep
// radius 2: j parameterizes the circular cross-section, i the sweep of
// that circle around the central axis. Each sample is rotated by a about
// one axis and b about another, then perspective-projected with the
// camera offset. A cell keeps the sample with the strictly greatest
// inverse depth.
//
// The luminance expression is kept exactly as derived for this
// projection; its constants are load-bearing and changing them changes
// the shading.
func Rasterize(f *Frame, a, b float64) {
	f.Clear()

	sinA, cosA := math.Sin(a), math.Cos(a)
	sinB, cosB := math.Sin(b), math.Cos(b)

	for j := 0.0; j < constants.SweepLimit; j += constants.TubeStep {
		sinJ, cosJ := math.Sin(j), math.Cos(j)
		for i := 0.0; i < constants.SweepLimit; i += constants.SweepStep {
			sinI, cosI := math.Sin(i), math.Cos(i)

			// Distance of the tube point from the central axis.
			h := cosJ + 2
			// Inverse distance from the viewer; larger is closer.
			d := 1 / (sinI*h*sinA + sinJ*cosA + constants.CameraOffset)
			t := sinI*h*cosA - sinJ*sinA

			x := int(constants.CenterX + constants.ScaleX*d*(cosI*h*cosB-t*sinB))
			y := int(constants.CenterY + constants.ScaleY*d*(cosI*h*sinB+t*cosB))

			if x <= 0 || x >= constants.ScreenWidth || y <= 0 || y >= constants.ScreenHeight {
				continue
			}

			o := Index(x, y)
			if d <= f.depth[o] {
				continue
			}

			lum := int(constants.LuminanceScale * ((sinJ*sinA-sinI*cosJ*cosA)*cosB - sinI*cosJ*sinA - sinJ*cosA - cosI*cosJ*sinB))
			f.depth[o] = d
			f.chars[o] = ShadeGlyph(lum)
		}
	}
}
