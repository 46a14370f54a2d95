package constants

import "time"

// Viewport Geometry
const (
	// ScreenWidth is the fixed viewport width in character cells
	ScreenWidth = 80

	// ScreenHeight is the fixed viewport height in character cells
	ScreenHeight = 22

	// ScreenCells is the flat buffer capacity shared by the glyph and depth grids
	ScreenCells = ScreenWidth * ScreenHeight
)

// Torus Sampling & Projection
const (
	// SweepStep is the angular step of the sweep around the central axis (radians)
	SweepStep = 0.02

	// TubeStep is the angular step around the tube cross-section (radians)
	TubeStep = 0.07

	// SweepLimit bounds both angular sweeps, just short of a full turn
	SweepLimit = 6.28

	// CameraOffset pushes the torus away from the viewer before projection
	CameraOffset = 5.0

	// ScaleX and ScaleY are the projection scales. The vertical scale is
	// half the horizontal one to offset the character cell aspect ratio.
	ScaleX = 30.0
	ScaleY = 15.0

	// CenterX and CenterY place the projection origin at the viewport center
	CenterX = 40.0
	CenterY = 12.0
)

// Shading
const (
	// LuminanceScale maps the raw surface luminance onto glyph ramp indices
	LuminanceScale = 8.0
)

// Rotation & Frame Pacing
const (
	// RotationStepA and RotationStepB advance the two rotation angles each
	// frame. The rates are independent so the spin never looks periodic.
	RotationStepA = 0.04
	RotationStepB = 0.02

	// BaseFrameInterval is the frame pacing at speed factor 1.0 (~30 FPS).
	// The effective interval is this divided by the speed factor.
	BaseFrameInterval = 33333 * time.Microsecond
)
