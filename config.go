package termchart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Config controls chart rendering. Construct one with [DefaultConfig] or
// [NewConfig] and adjust fields directly or through [Option] values.
//
// A Config is a plain value: rendering never mutates it, and the same Config
// may be shared by concurrent render calls.
type Config struct {
	// Height is the number of chart rows. Must be at least 1.
	Height int

	// Width is the number of chart columns. One sample occupies one column;
	// samples at index >= Width are not rendered.
	Width int

	// Offset is the minimum number of columns reserved for the label margin.
	// The margin grows beyond Offset if the formatted labels are wider.
	// Ignored when ShowLabels is false.
	Offset int

	// Min and Max, when non-nil, pin the corresponding end of the value
	// range instead of deriving it from the data. If both are set, Min must
	// be strictly below Max.
	Min *float64
	Max *float64

	// ShowLabels enables the Y-axis label margin.
	ShowLabels bool

	// LabelTicks is the number of labeled rows. Values below 1 are coerced
	// to 1: at least one tick is always meaningful.
	LabelTicks int

	// LabelFormat is the fmt verb used for tick values, e.g. "%.2f".
	LabelFormat string

	// LabelPrinter, when non-nil, formats tick values with locale-aware
	// number formatting instead of plain fmt. See [WithLabelLanguage].
	LabelPrinter *message.Printer

	// Symbols selects the drawing glyphs. The zero value is replaced by
	// [DefaultSymbols].
	Symbols SymbolSet
}

// DefaultConfig returns the configuration used by the convenience entry
// points: 10 rows, 80 columns, labels on with 5 ticks formatted as "%.2f",
// and the Unicode symbol set.
func DefaultConfig() Config {
	return Config{
		Height:      10,
		Width:       80,
		Offset:      3,
		ShowLabels:  true,
		LabelTicks:  5,
		LabelFormat: "%.2f",
		Symbols:     DefaultSymbols(),
	}
}

// Option adjusts a Config during construction with [NewConfig].
type Option func(*Config)

// NewConfig returns [DefaultConfig] with the given options applied.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithHeight sets the chart height in rows.
func WithHeight(h int) Option { return func(c *Config) { c.Height = h } }

// WithWidth sets the chart width in columns.
func WithWidth(w int) Option { return func(c *Config) { c.Width = w } }

// WithOffset sets the minimum label margin width in columns.
func WithOffset(o int) Option { return func(c *Config) { c.Offset = o } }

// WithMin pins the lower end of the value range.
func WithMin(min float64) Option { return func(c *Config) { c.Min = &min } }

// WithMax pins the upper end of the value range.
func WithMax(max float64) Option { return func(c *Config) { c.Max = &max } }

// WithRange pins both ends of the value range.
func WithRange(min, max float64) Option {
	return func(c *Config) { c.Min, c.Max = &min, &max }
}

// WithLabels enables or disables the Y-axis label margin.
func WithLabels(show bool) Option { return func(c *Config) { c.ShowLabels = show } }

// WithLabelTicks sets the number of labeled rows.
func WithLabelTicks(n int) Option { return func(c *Config) { c.LabelTicks = n } }

// WithLabelFormat sets the fmt verb used for tick values.
func WithLabelFormat(format string) Option {
	return func(c *Config) { c.LabelFormat = format }
}

// WithLabelLanguage formats tick values for the given language, e.g.
// decimal commas for [language.German] or digit grouping where the locale
// calls for it.
func WithLabelLanguage(tag language.Tag) Option {
	return func(c *Config) { c.LabelPrinter = message.NewPrinter(tag) }
}

// WithSymbols sets a custom symbol set.
func WithSymbols(s SymbolSet) Option { return func(c *Config) { c.Symbols = s } }

// WithASCIISymbols selects the 7-bit ASCII symbol set.
func WithASCIISymbols() Option {
	return func(c *Config) { c.Symbols = ASCIISymbols() }
}

// normalized validates the configuration and fills in coercible defaults.
// Validation is total and upfront: a Config that passes normalized cannot
// fail later in the render pipeline for configuration reasons.
func (c Config) normalized() (Config, error) {
	if c.Height < 1 || c.Width < 1 {
		return c, ErrZeroDimension
	}
	if c.Min != nil && c.Max != nil && *c.Min >= *c.Max {
		return c, ErrInvalidRange
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
	if c.LabelTicks < 1 {
		c.LabelTicks = 1
	}
	if c.LabelFormat == "" {
		c.LabelFormat = "%.2f"
	}
	if c.Symbols == (SymbolSet{}) {
		c.Symbols = DefaultSymbols()
	}
	return c, nil
}
