package termchart

import (
	"strings"
	"testing"
)

// TestOverlayLastWriterWins verifies merge order: where two series paint
// the same cell, the series supplied later provides the final glyph.
func TestOverlayLastWriterWins(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{3, 2, 1}
	cfg := unlabeled(3, 3)

	ab, err := RenderOverlayWithConfig([][]float64{a, b}, cfg)
	if err != nil {
		t.Fatalf("render a,b: %v", err)
	}
	ba, err := RenderOverlayWithConfig([][]float64{b, a}, cfg)
	if err != nil {
		t.Fatalf("render b,a: %v", err)
	}

	// The two series cross at the center cell; the later series' glyph
	// must survive there.
	if cell := runeAt(ab, 1, 1); cell != '╰' {
		t.Errorf("a,b center = %q, want %q (b drawn last)", cell, '╰')
	}
	if cell := runeAt(ba, 1, 1); cell != '╭' {
		t.Errorf("b,a center = %q, want %q (a drawn last)", cell, '╭')
	}
	if ab == ba {
		t.Error("overlay order had no effect on output")
	}
}

// TestOverlayGolden pins a full two-series overlay on a shared scale.
func TestOverlayGolden(t *testing.T) {
	got, err := RenderOverlayWithConfig(
		[][]float64{{1, 2, 3}, {3, 2, 1}}, unlabeled(3, 3))
	if err != nil {
		t.Fatalf("RenderOverlayWithConfig: %v", err)
	}
	want := strings.Join([]string{
		"─╮╭",
		" ╰╮",
		"─╯╰",
	}, "\n")
	if got != want {
		t.Errorf("overlay mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// TestOverlaySharedScale verifies all series are quantized against one
// resolved range: a series flat at the global maximum sits on the top row.
func TestOverlaySharedScale(t *testing.T) {
	low := []float64{0, 0, 0}
	high := []float64{10, 10, 10}
	got, err := RenderOverlayWithConfig([][]float64{low, high}, unlabeled(5, 3))
	if err != nil {
		t.Fatalf("RenderOverlayWithConfig: %v", err)
	}
	lines := strings.Split(got, "\n")
	if lines[0] != "───" {
		t.Errorf("top row = %q, want the high series", lines[0])
	}
	if lines[4] != "───" {
		t.Errorf("bottom row = %q, want the low series", lines[4])
	}
}

// TestOverlaySkipsEmptySeries verifies an empty series in an overlay is
// harmless as long as any series has samples.
func TestOverlaySkipsEmptySeries(t *testing.T) {
	got, err := RenderOverlayWithConfig(
		[][]float64{{}, {1, 2, 3}}, unlabeled(3, 3))
	if err != nil {
		t.Fatalf("RenderOverlayWithConfig: %v", err)
	}
	if strings.TrimSpace(got) == "" {
		t.Error("overlay with one populated series rendered nothing")
	}
}

// runeAt returns the rune at the given row and column of a rendered chart,
// or a space if the trimmed row is shorter than the column.
func runeAt(chart string, row, col int) rune {
	lines := strings.Split(chart, "\n")
	if row >= len(lines) {
		return ' '
	}
	runes := []rune(lines[row])
	if col >= len(runes) {
		return ' '
	}
	return runes[col]
}
