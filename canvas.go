package termchart

import (
	"math"
	"strings"
)

// canvas is a rows×cols grid of glyph cells plus the value-to-row mapping
// shared by everything that paints on it. Row 0 is the top of the chart
// (the maximum end of the range); row rows-1 is the bottom. A cell holds
// the zero rune until something is painted there.
//
// A canvas is created fresh per render call and never shared across calls.
type canvas struct {
	rows, cols int
	min, max   float64
	cells      [][]rune
}

// newCanvas allocates a cleared grid with the given row mapping.
// The caller guarantees rows >= 1, cols >= 1 and min < max.
func newCanvas(rows, cols int, min, max float64) *canvas {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = make([]rune, cols)
	}
	return &canvas{rows: rows, cols: cols, min: min, max: max, cells: cells}
}

// row maps a finite value to its row index, clamped to [0, rows-1].
// With rows == 1 every value maps to the single row.
func (c *canvas) row(v float64) int {
	if c.rows == 1 {
		return 0
	}
	r := int(math.Round((c.max - v) / (c.max - c.min) * float64(c.rows-1)))
	if r < 0 {
		return 0
	}
	if r >= c.rows {
		return c.rows - 1
	}
	return r
}

// set paints a glyph, overwriting whatever was there. Out-of-range
// coordinates are silently ignored.
func (c *canvas) set(row, col int, g rune) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	c.cells[row][col] = g
}

// String serializes the grid: one line per row, unset cells as spaces,
// trailing whitespace trimmed, lines joined with "\n" and no trailing
// newline after the last row.
func (c *canvas) String() string {
	var b strings.Builder
	b.Grow(c.rows * (c.cols + 1))
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		last := -1
		for col, g := range c.cells[row] {
			if g != 0 && g != ' ' {
				last = col
			}
		}
		for col := 0; col <= last; col++ {
			g := c.cells[row][col]
			if g == 0 {
				g = ' '
			}
			b.WriteRune(g)
		}
	}
	return b.String()
}
