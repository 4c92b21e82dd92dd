// Package wave generates synthetic sample series for demos and tests of
// the termchart renderer: sine and cosine waves and a seeded random walk.
//
// Each generator returns a slice of exactly the requested length (nil for
// non-positive lengths) and makes no assumptions about how the series is
// rendered.
package wave

import (
	"math"
	"math/rand"
)

// Sine returns points samples of sin(frequency·x + phase) with x sweeping
// one full period [0, 2π) across the slice.
func Sine(points int, frequency, phase float64) []float64 {
	return sampled(points, func(x float64) float64 {
		return math.Sin(frequency*x + phase)
	})
}

// Cosine returns points samples of cos(frequency·x + phase) with x
// sweeping one full period [0, 2π) across the slice.
func Cosine(points int, frequency, phase float64) []float64 {
	return sampled(points, func(x float64) float64 {
		return math.Cos(frequency*x + phase)
	})
}

// sampled evaluates f at points evenly spaced positions over [0, 2π).
func sampled(points int, f func(float64) float64) []float64 {
	if points <= 0 {
		return nil
	}
	out := make([]float64, points)
	for i := range out {
		x := float64(i) * 2 * math.Pi / float64(points)
		out[i] = f(x)
	}
	return out
}

// RandomWalk returns a series of points values beginning at start, each
// subsequent value offset by a uniform step in [-volatility/2, volatility/2).
// The walk is deterministic for a given seed.
func RandomWalk(points int, start, volatility float64, seed int64) []float64 {
	if points <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, points)
	out[0] = start
	for i := 1; i < points; i++ {
		out[i] = out[i-1] + (rng.Float64()-0.5)*volatility
	}
	return out
}
