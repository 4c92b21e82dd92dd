package termchart

// SymbolSet holds the glyphs used to draw a chart: one glyph for horizontal
// runs, one for vertical runs, one for each of the four corner orientations,
// and one axis/border glyph separating the label margin from the chart body.
//
// The zero value is not usable directly; it is replaced by [DefaultSymbols]
// during configuration normalization.
type SymbolSet struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Axis        rune
}

// DefaultSymbols returns the Unicode box-drawing symbol set.
func DefaultSymbols() SymbolSet {
	return SymbolSet{
		Horizontal:  '─',
		Vertical:    '│',
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
		Axis:        '┤',
	}
}

// ASCIISymbols returns a 7-bit ASCII symbol set for terminals or fonts
// without box-drawing glyph coverage. All four corners share '+'.
func ASCIISymbols() SymbolSet {
	return SymbolSet{
		Horizontal:  '-',
		Vertical:    '|',
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Axis:        '|',
	}
}

// glyphRole identifies a drawing role within a SymbolSet. The rasterizer's
// corner table is expressed in roles rather than runes so that one table
// serves every symbol set.
type glyphRole int

const (
	glyphHorizontal glyphRole = iota
	glyphVertical
	glyphTopLeft
	glyphTopRight
	glyphBottomLeft
	glyphBottomRight
	glyphAxis
)

// glyph returns the rune for a drawing role.
func (s SymbolSet) glyph(r glyphRole) rune {
	switch r {
	case glyphHorizontal:
		return s.Horizontal
	case glyphVertical:
		return s.Vertical
	case glyphTopLeft:
		return s.TopLeft
	case glyphTopRight:
		return s.TopRight
	case glyphBottomLeft:
		return s.BottomLeft
	case glyphBottomRight:
		return s.BottomRight
	case glyphAxis:
		return s.Axis
	}
	return ' '
}
