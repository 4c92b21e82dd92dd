package termchart

import "errors"

// RenderWithConfig renders one series under full caller control. It is the
// fallible core every convenience entry point is defined in terms of:
// validation is total and upfront, and rendering either produces a complete
// chart or fails with one of the sentinel errors in errors.go before any
// canvas is allocated.
func RenderWithConfig(series []float64, cfg Config) (string, error) {
	return RenderOverlayWithConfig([][]float64{series}, cfg)
}

// RenderOverlayWithConfig renders several series overlaid on one shared
// canvas and value scale. Later series overwrite earlier ones where they
// collide (see compose).
func RenderOverlayWithConfig(seriesList [][]float64, cfg Config) (string, error) {
	cfg, err := cfg.normalized()
	if err != nil {
		return "", err
	}
	total := 0
	for _, series := range seriesList {
		total += len(series)
		if len(series) > cfg.Width {
			Logger().Debug("series wider than chart, clipping",
				"samples", len(series), "width", cfg.Width)
		}
	}
	if total == 0 {
		return "", ErrEmptyData
	}
	min, max, err := resolveRange(seriesList, cfg)
	if err != nil {
		return "", err
	}
	Logger().Debug("range resolved", "min", min, "max", max,
		"height", cfg.Height, "width", cfg.Width)

	bodyCol := 0
	var labels map[int]string
	margin := 0
	if cfg.ShowLabels {
		var widest int
		labels, widest = tickLabels(cfg, min, max)
		margin = cfg.Offset
		if widest > margin {
			margin = widest
		}
		bodyCol = margin + 1 // labels, then one axis column
	}

	cv := newCanvas(cfg.Height, bodyCol+cfg.Width, min, max)
	compose(seriesList, cv, bodyCol, cfg)
	if cfg.ShowLabels {
		writeLabels(cv, cfg, labels, margin)
	}
	return cv.String(), nil
}

// Render renders a series with [DefaultConfig]: auto range, Unicode
// symbols, labels on with 5 ticks.
func Render(series []float64) string {
	return renderLenient([][]float64{series}, DefaultConfig())
}

// RenderSized renders with the given height and width and defaults for
// everything else.
func RenderSized(series []float64, height, width int) string {
	return renderLenient([][]float64{series},
		NewConfig(WithHeight(height), WithWidth(width)))
}

// RenderRange renders with explicit Y bounds and defaults for everything
// else.
func RenderRange(series []float64, min, max float64) string {
	return renderLenient([][]float64{series}, NewConfig(WithRange(min, max)))
}

// RenderUnlabeled renders without the label margin.
func RenderUnlabeled(series []float64) string {
	return renderLenient([][]float64{series}, NewConfig(WithLabels(false)))
}

// RenderASCII renders with the 7-bit ASCII symbol set.
func RenderASCII(series []float64) string {
	return renderLenient([][]float64{series}, NewConfig(WithASCIISymbols()))
}

// RenderOverlay renders several series on one shared scale with
// [DefaultConfig]. Later series draw over earlier ones where they overlap.
func RenderOverlay(seriesList ...[]float64) string {
	return renderLenient(seriesList, DefaultConfig())
}

// renderLenient backs the convenience entry points, which never return an
// error: empty data degrades to an empty string, and the remaining failure
// modes reachable through caller-supplied bounds or all-non-finite data
// degrade to the error message as the chart text.
func renderLenient(seriesList [][]float64, cfg Config) string {
	out, err := RenderOverlayWithConfig(seriesList, cfg)
	switch {
	case err == nil:
		return out
	case errors.Is(err, ErrEmptyData):
		return ""
	default:
		return err.Error()
	}
}
