package termchart

// direction classifies the transition between two consecutive samples by
// comparing their mapped rows. Row numbers decrease upward, so a rising
// value means the new row is above (smaller than) the previous one.
type direction int

const (
	dirFlat direction = iota
	dirRising
	dirFalling
)

// segmentDirection classifies the transition from prevRow to nextRow.
func segmentDirection(prevRow, nextRow int) direction {
	switch {
	case nextRow < prevRow:
		return dirRising
	case nextRow > prevRow:
		return dirFalling
	}
	return dirFlat
}

// cornerTable maps a vertical transition to its corner glyph pair. depart
// sits on the previous sample's row, arrive on the new sample's row, both in
// the arriving sample's column, with vertical fill strictly between them.
//
// Rising and falling transitions use horizontally mirrored pairs: a rising
// line turns up out of its horizontal run (╯) and closes back to horizontal
// at the top (╭); a falling line is the mirror image (╮ then ╰). Swapping
// the two entries is exactly the historical regression the fixture tests in
// raster_test.go pin down; review changes here against those goldens.
var cornerTable = map[direction]struct{ depart, arrive glyphRole }{
	dirRising:  {depart: glyphBottomRight, arrive: glyphTopLeft},
	dirFalling: {depart: glyphTopRight, arrive: glyphBottomLeft},
}

// rasterize paints one series onto cv starting at column startCol, one
// column per sample. Samples whose column falls outside the grid are not
// rendered. A non-finite sample breaks the line: no segment is drawn into
// or out of its column, and the next finite sample starts fresh.
func rasterize(series []float64, cv *canvas, startCol int, sym SymbolSet) {
	prevRow := 0
	havePrev := false
	for i, v := range series {
		col := startCol + i
		if col >= cv.cols {
			break
		}
		if !isFinite(v) {
			havePrev = false
			continue
		}
		row := cv.row(v)
		if havePrev {
			drawSegment(cv, prevRow, row, col, sym)
		} else {
			// Series start, or restart after a gap: a single point.
			cv.set(row, col, sym.Horizontal)
		}
		prevRow = row
		havePrev = true
	}
}

// drawSegment paints the transition from prevRow into (row, col).
func drawSegment(cv *canvas, prevRow, row, col int, sym SymbolSet) {
	dir := segmentDirection(prevRow, row)
	if dir == dirFlat {
		cv.set(row, col, sym.Horizontal)
		return
	}
	corners := cornerTable[dir]
	cv.set(prevRow, col, sym.glyph(corners.depart))
	cv.set(row, col, sym.glyph(corners.arrive))
	lo, hi := prevRow, row
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		cv.set(r, col, sym.Vertical)
	}
}
