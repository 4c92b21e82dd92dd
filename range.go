package termchart

import "math"

// Degenerate ranges (all samples equal) are widened symmetrically so that
// row quantization never divides by zero and the chart always has exactly
// the configured height. The pad is proportional to the value's magnitude,
// with an absolute floor when the value is zero.
const (
	rangePadRelative = 1e-3
	rangePadAbsolute = 0.5
)

// resolveRange computes the effective [min, max] used for row mapping.
// All finite samples across every series contribute, so overlaid series
// share one value scale. Explicit Config bounds override the computed bound
// on that side only.
func resolveRange(seriesList [][]float64, cfg Config) (float64, float64, error) {
	dataMin := math.Inf(1)
	dataMax := math.Inf(-1)
	finite := false
	for _, series := range seriesList {
		for _, v := range series {
			if !isFinite(v) {
				continue
			}
			finite = true
			dataMin = math.Min(dataMin, v)
			dataMax = math.Max(dataMax, v)
		}
	}
	if !finite && (cfg.Min == nil || cfg.Max == nil) {
		return 0, 0, ErrAllNonFinite
	}

	min, max := dataMin, dataMax
	if cfg.Min != nil {
		min = *cfg.Min
	}
	if cfg.Max != nil {
		max = *cfg.Max
	}
	// An explicit bound on one side can cross the computed bound on the
	// other (e.g. a pinned min above all data).
	if min > max {
		return 0, 0, ErrInvalidRange
	}
	if min == max {
		pad := math.Abs(min) * rangePadRelative
		if pad == 0 {
			pad = rangePadAbsolute
		}
		min -= pad
		max += pad
	}
	return min, max, nil
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
