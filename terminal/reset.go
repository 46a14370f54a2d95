// Package terminal holds the small amount of direct terminal handling
// that lives outside tcell: crash-path restoration and TTY detection.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Restore sequences for crash paths, written without going through
// tcell's finalizer since it may not run after a panic.
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
)

// EmergencyReset returns the terminal to a usable state from a crash
// path. Best effort: errors are ignored, the process is already dying.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
