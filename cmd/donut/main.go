package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/donut/engine"
	"github.com/lixenwraith/donut/render"
	"github.com/lixenwraith/donut/terminal"
)

var (
	colorFlag = flag.String("color", "green", "palette name (German synonyms accepted)")
	speedFlag = flag.String("speed", "1", "positive speed factor; >1 spins faster, <1 slower")
	onceFlag  = flag.Bool("once", false, "render a single frame to stdout and exit")
	debugFlag = flag.Bool("debug", false, "write debug logs to "+logDir+"/"+logFileName)
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] [color] [speed]\n", os.Args[0])
	fmt.Fprintln(out, "Press 'q' or ESC to quit.")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Available colors: %s\n", strings.Join(render.PaletteNames, ", "))
	fmt.Fprintln(out)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	colorName := *colorFlag
	speedArg := *speedFlag

	// The original positional form (donut [color] [speed]) still works
	// and takes precedence over the flags.
	if args := flag.Args(); len(args) > 0 {
		colorName = args[0]
		if len(args) > 1 {
			speedArg = args[1]
		}
		if len(args) > 2 {
			fmt.Fprintf(os.Stderr, "Warning: Too many arguments. Use '%s --help' for help.\n", os.Args[0])
		}
	}

	palette := choosePalette(colorName)
	speed := parseSpeed(speedArg)
	log.Printf("start color=%s speed=%g interval=%v", colorName, speed, engine.FrameInterval(speed))

	if *onceFlag || !terminal.IsTTY(os.Stdout) {
		renderOnce(palette)
		return
	}

	runInteractive(palette, speed)
}

// choosePalette resolves a palette name, falling back to green with a
// warning when the name is not recognized.
func choosePalette(name string) render.Palette {
	palette, ok := render.PaletteFor(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Warning: Unknown color '%s'. Using default 'green'.\nAvailable: %s\n",
			name, strings.Join(render.PaletteNames, ", "))
	}
	return palette
}

// parseSpeed validates the speed factor, falling back to 1.0 with a
// warning for anything non-positive, non-finite, or unparseable.
// ParseFloat accepts "nan" and "inf", and NaN slips through a <= 0
// comparison, so finiteness is checked explicitly.
func parseSpeed(raw string) float64 {
	speed, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		fmt.Fprintf(os.Stderr, "Warning: Invalid speed factor '%s'. Must be a positive number. Using default 1.0.\n", raw)
		return 1.0
	}
	return speed
}

// renderOnce rasterizes a single frame at the initial rotation and
// writes it to stdout: colored when stdout is a terminal, plain when
// piped.
func renderOnce(palette render.Palette) {
	frame := render.NewFrame()
	render.Rasterize(frame, 0, 0)

	var p *render.Palette
	if terminal.IsTTY(os.Stdout) {
		p = &palette
	}
	if err := render.EncodeFrame(os.Stdout, frame, p); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
}

// runInteractive owns the tcell screen for the session. Setup failures
// are fatal; the deferred recover restores the terminal before the
// stack trace is printed so a crash never leaves the shell in raw mode.
func runInteractive(palette render.Palette, speed float64) {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			// \r\n keeps the output aligned if raw mode is still active.
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDONUT CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	engine.NewLoop(screen, palette, speed).Run()
	log.Print("quit")
}
