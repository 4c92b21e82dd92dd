package termchart

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// tickRows returns the labeled row indices. For one tick only the top row
// is labeled; for more, ticks are spread evenly across [0, height-1]
// inclusive of both ends, with duplicates collapsed on short charts.
func tickRows(height, ticks int) []int {
	if ticks <= 1 || height == 1 {
		return []int{0}
	}
	rows := make([]int, 0, ticks)
	for i := 0; i < ticks; i++ {
		r := int(math.Round(float64(i) * float64(height-1) / float64(ticks-1)))
		if len(rows) == 0 || rows[len(rows)-1] != r {
			rows = append(rows, r)
		}
	}
	return rows
}

// labelValue inverts the row mapping: the value whose row center sits at
// the given row.
func labelValue(row, height int, min, max float64) float64 {
	if height == 1 {
		return max
	}
	return max - float64(row)/float64(height-1)*(max-min)
}

// formatLabel renders one tick value. With a LabelPrinter configured the
// value goes through locale-aware number formatting, otherwise plain fmt.
func (c Config) formatLabel(v float64) string {
	if c.LabelPrinter != nil {
		return c.LabelPrinter.Sprintf(c.LabelFormat, v)
	}
	return fmt.Sprintf(c.LabelFormat, v)
}

// tickLabels formats the label for every tick row and reports the widest
// label in runes.
func tickLabels(cfg Config, min, max float64) (labels map[int]string, widest int) {
	labels = make(map[int]string)
	for _, row := range tickRows(cfg.Height, cfg.LabelTicks) {
		s := cfg.formatLabel(labelValue(row, cfg.Height, min, max))
		labels[row] = s
		if n := utf8.RuneCountInString(s); n > widest {
			widest = n
		}
	}
	return labels, widest
}

// writeLabels fills the left margin of cv: each tick row gets its label
// right-aligned to the margin width, every row gets the axis glyph in the
// column after the margin, and non-tick rows get blank padding so the chart
// body stays column-aligned.
func writeLabels(cv *canvas, cfg Config, labels map[int]string, margin int) {
	for row := 0; row < cv.rows; row++ {
		if label, ok := labels[row]; ok {
			col := margin - utf8.RuneCountInString(label)
			for _, g := range label {
				cv.set(row, col, g)
				col++
			}
		}
		cv.set(row, margin, cfg.Symbols.Axis)
	}
}
