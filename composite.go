package termchart

// compose rasterizes each series against its own scratch grid and merges
// the results onto cv with the chart body starting at bodyCol.
//
// Series are merged in the order supplied: where two series paint the same
// cell, the later series wins. Callers control which series visually
// dominates overlaps by ordering.
func compose(seriesList [][]float64, cv *canvas, bodyCol int, cfg Config) {
	for _, series := range seriesList {
		scratch := newCanvas(cfg.Height, cfg.Width, cv.min, cv.max)
		rasterize(series, scratch, 0, cfg.Symbols)
		for row := 0; row < scratch.rows; row++ {
			for col, g := range scratch.cells[row] {
				if g != 0 {
					cv.set(row, bodyCol+col, g)
				}
			}
		}
	}
}
