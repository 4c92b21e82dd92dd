package termchart

import (
	"errors"
	"testing"
)

// TestNormalizedCoercions verifies the values that are coerced rather than
// rejected: tick count, negative offset, empty format, zero symbol set.
func TestNormalizedCoercions(t *testing.T) {
	cfg := Config{Height: 5, Width: 10, Offset: -2, LabelTicks: 0}
	got, err := cfg.normalized()
	if err != nil {
		t.Fatalf("normalized: %v", err)
	}
	if got.LabelTicks != 1 {
		t.Errorf("LabelTicks = %d, want 1", got.LabelTicks)
	}
	if got.Offset != 0 {
		t.Errorf("Offset = %d, want 0", got.Offset)
	}
	if got.LabelFormat != "%.2f" {
		t.Errorf("LabelFormat = %q, want %%.2f", got.LabelFormat)
	}
	if got.Symbols != DefaultSymbols() {
		t.Errorf("zero SymbolSet not replaced by default")
	}
}

// TestNormalizedRejections verifies the two hard validation rules.
func TestNormalizedRejections(t *testing.T) {
	for _, cfg := range []Config{
		{Height: 0, Width: 10},
		{Height: 10, Width: 0},
		{Height: -1, Width: -1},
	} {
		if _, err := cfg.normalized(); !errors.Is(err, ErrZeroDimension) {
			t.Errorf("height=%d width=%d: err = %v, want ErrZeroDimension",
				cfg.Height, cfg.Width, err)
		}
	}

	if _, err := NewConfig(WithRange(3, 3)).normalized(); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("equal bounds: err = %v, want ErrInvalidRange", err)
	}
	if _, err := NewConfig(WithRange(3, 1)).normalized(); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("inverted bounds: err = %v, want ErrInvalidRange", err)
	}
}

// TestOptions verifies the functional options map onto Config fields.
func TestOptions(t *testing.T) {
	cfg := NewConfig(
		WithHeight(7),
		WithWidth(33),
		WithOffset(5),
		WithRange(-1, 1),
		WithLabels(false),
		WithLabelTicks(9),
		WithLabelFormat("%.1f"),
		WithASCIISymbols(),
	)
	if cfg.Height != 7 || cfg.Width != 33 || cfg.Offset != 5 {
		t.Errorf("dimensions = %d×%d offset %d, want 7×33 offset 5",
			cfg.Height, cfg.Width, cfg.Offset)
	}
	if cfg.Min == nil || *cfg.Min != -1 || cfg.Max == nil || *cfg.Max != 1 {
		t.Errorf("range not applied: min=%v max=%v", cfg.Min, cfg.Max)
	}
	if cfg.ShowLabels || cfg.LabelTicks != 9 || cfg.LabelFormat != "%.1f" {
		t.Errorf("label settings not applied: %+v", cfg)
	}
	if cfg.Symbols != ASCIISymbols() {
		t.Errorf("symbols = %+v, want ASCII set", cfg.Symbols)
	}
}

// TestDefaultConfig pins the documented defaults the convenience entry
// points rely on.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Height != 10 || cfg.Width != 80 || cfg.Offset != 3 {
		t.Errorf("dimensions = %d×%d offset %d, want 10×80 offset 3",
			cfg.Height, cfg.Width, cfg.Offset)
	}
	if !cfg.ShowLabels || cfg.LabelTicks != 5 || cfg.LabelFormat != "%.2f" {
		t.Errorf("label defaults = %v/%d/%q, want true/5/%%.2f",
			cfg.ShowLabels, cfg.LabelTicks, cfg.LabelFormat)
	}
	if cfg.Min != nil || cfg.Max != nil {
		t.Errorf("default range should be auto, got min=%v max=%v", cfg.Min, cfg.Max)
	}
	if _, err := cfg.normalized(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
}
