// Package termchart renders sequences of numeric samples as smooth line
// charts made of text glyphs, suitable for printing to a terminal.
//
// # Overview
//
// termchart maps each sample to a cell on a fixed row/column grid and joins
// consecutive samples with Unicode box-drawing characters (or an ASCII
// fallback set), so a series reads as a continuous curve rather than a
// jagged staircase. Rendering is a pure function from (series, Config) to a
// finished text block or a typed error: no terminal state, no timing, no
// color or cursor-control sequences.
//
// # Quick Start
//
//	import "github.com/termchart/termchart"
//
//	data := []float64{1, 4, 9, 16, 9, 4, 1}
//	fmt.Println(termchart.Render(data))
//
// Full control goes through [RenderWithConfig]:
//
//	cfg := termchart.NewConfig(
//	    termchart.WithHeight(15),
//	    termchart.WithWidth(60),
//	    termchart.WithLabelTicks(6),
//	)
//	chart, err := termchart.RenderWithConfig(data, cfg)
//
// # Output Format
//
// The output has exactly Config.Height lines joined by "\n" with no
// trailing newline. With labels enabled each line is a right-aligned tick
// label (or blank padding), one axis glyph, then the chart body; without
// labels each line is the chart body alone. One sample occupies one column,
// in insertion order; NaN and infinite samples are never plotted and leave
// a visible gap.
//
// # Multiple Series
//
// [RenderOverlay] and [RenderOverlayWithConfig] draw several series on one
// shared canvas and value scale. Series merge in the order supplied:
// where two series paint the same cell, the later one wins.
//
// # Concurrency
//
// The engine is stateless and reentrant. Every render call owns its own
// canvas, so independent calls may run concurrently without coordination.
package termchart

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
