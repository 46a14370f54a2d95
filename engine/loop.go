// Package engine drives the render pipeline: it owns the rotation state,
// paces frames, and watches for a quit key between rendering passes.
package engine

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/donut/constants"
	"github.com/lixenwraith/donut/render"
	"github.com/lixenwraith/donut/terminal"
)

// Loop renders frames to a tcell screen until told to quit.
type Loop struct {
	screen     tcell.Screen
	compositor *render.Compositor
	frame      *render.Frame
	interval   time.Duration

	// Rotation angles. Monotonically increasing; trigonometric
	// periodicity makes wrapping unnecessary.
	A, B float64
}

// NewLoop creates a loop rendering with the given palette at the given
// speed factor. The factor must be positive; the caller validates it.
func NewLoop(screen tcell.Screen, palette render.Palette, speed float64) *Loop {
	return &Loop{
		screen:     screen,
		compositor: render.NewCompositor(palette),
		frame:      render.NewFrame(),
		interval:   FrameInterval(speed),
	}
}

// FrameInterval scales the base frame interval by the inverse of the
// speed factor: factor 2 renders twice as fast. The result is clamped to
// a minimum of one microsecond so extreme factors cannot truncate the
// interval to zero, which time.NewTicker rejects.
func FrameInterval(speed float64) time.Duration {
	interval := time.Duration(float64(constants.BaseFrameInterval) / speed)
	if interval < time.Microsecond {
		interval = time.Microsecond
	}
	return interval
}

// Advance moves the rotation state forward by one frame's deltas.
func (l *Loop) Advance() {
	l.A += constants.RotationStepA
	l.B += constants.RotationStepB
}

// renderFrame runs one full rasterize/compose pass for the current
// angles.
func (l *Loop) renderFrame() {
	render.Rasterize(l.frame, l.A, l.B)
	l.compositor.Compose(l.frame, l.screen)
}

// Run renders frames until a quit key arrives or the event stream ends.
// A dedicated goroutine forwards terminal events over a channel; the
// loop itself stays single-threaded and checks for quit once per frame
// tick, so a frame in progress is never interrupted.
func (l *Loop) Run() {
	events := make(chan tcell.Event, 16)
	go forwardEvents(l.screen.PollEvent, events)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.renderFrame()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if quitEvent(ev) {
				return
			}
		case <-ticker.C:
			l.Advance()
			l.renderFrame()
		}
	}
}

// crashHandler restores the terminal before the process dies when the
// event goroutine panics; its recover cannot reach the main goroutine's.
// Overridable for tests.
var crashHandler = func(r any) {
	terminal.EmergencyReset(os.Stdout)
	// \r\n keeps the output aligned if raw mode is still active.
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// forwardEvents pumps terminal events into the channel until the event
// stream ends (poll returns nil once the screen is finalized or broken).
func forwardEvents(poll func() tcell.Event, events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			crashHandler(r)
		}
	}()

	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		events <- ev
	}
}

// quitEvent reports whether an input event ends the session: q, Q,
// Escape, or Ctrl+C (raw mode swallows the signal, so it arrives as a
// key).
func quitEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := key.Rune()
		return r == 'q' || r == 'Q'
	}
	return false
}
