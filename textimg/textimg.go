// Package textimg draws a rendered termchart text block into an image,
// for snapshot files and documentation outside the terminal.
//
// Glyphs are drawn with a monospace bitmap face. Box-drawing runes are
// mapped to their ASCII equivalents first, since bitmap faces rarely cover
// them; charts rendered with termchart.ASCIISymbols pass through unchanged.
package textimg

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type options struct {
	face       font.Face
	foreground color.Color
	background color.Color
	padding    int
}

// Option adjusts how a chart is drawn.
type Option func(*options)

// WithFace sets the font face. The default is basicfont.Face7x13.
func WithFace(f font.Face) Option { return func(o *options) { o.face = f } }

// WithForeground sets the glyph color. The default is black.
func WithForeground(c color.Color) Option { return func(o *options) { o.foreground = c } }

// WithBackground sets the fill color. The default is white.
func WithBackground(c color.Color) Option { return func(o *options) { o.background = c } }

// WithPadding sets the pixel margin around the chart. The default is 4.
func WithPadding(px int) Option { return func(o *options) { o.padding = px } }

// asciiFallback maps the box-drawing glyphs termchart emits onto runes a
// plain bitmap face can draw.
var asciiFallback = map[rune]rune{
	'─': '-',
	'│': '|',
	'╭': '+',
	'╮': '+',
	'╰': '+',
	'╯': '+',
	'┤': '|',
	'┼': '+',
	'┴': '+',
}

// flatten substitutes runes outside 7-bit ASCII.
func flatten(r rune) rune {
	if r < 0x80 {
		return r
	}
	if a, ok := asciiFallback[r]; ok {
		return a
	}
	return '?'
}

// Draw renders a chart string onto a fresh RGBA image sized to fit it.
func Draw(chart string, opts ...Option) *image.RGBA {
	o := options{
		face:       basicfont.Face7x13,
		foreground: color.Black,
		background: color.White,
		padding:    4,
	}
	for _, opt := range opts {
		opt(&o)
	}

	lines := strings.Split(chart, "\n")
	cols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		cols = 1
	}

	metrics := o.face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()
	advance := 7
	if adv, ok := o.face.GlyphAdvance('0'); ok {
		advance = adv.Ceil()
	}

	img := image.NewRGBA(image.Rect(0, 0,
		o.padding*2+cols*advance,
		o.padding*2+len(lines)*lineHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.background), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(o.foreground),
		Face: o.face,
	}
	var flat strings.Builder
	for i, line := range lines {
		flat.Reset()
		for _, r := range line {
			flat.WriteRune(flatten(r))
		}
		drawer.Dot = fixed.P(o.padding, o.padding+i*lineHeight+ascent)
		drawer.DrawString(flat.String())
	}
	return img
}
