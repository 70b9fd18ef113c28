// SPDX-License-Identifier: MIT
// Package: volstat/window
//
// volatility.go — sliding-window transforms (rolling volatility, rolling mean).
//
// Algorithm (per transform):
//  1. Validate: window constructed (size ≥ 1) and size ≤ len(series).
//  2. For i = 0 .. n−size: apply the reducer to series[i : i+size].
//  3. Emit values left-aligned: out[i] belongs to the window starting at i.
//
// Determinism:
//   - Fixed left-to-right traversal; results are bit-identical across runs.
//
// Complexity:
//   - Time O(n·w) (reducers are two-pass over each window), Space O(n−w+1).

package window

import (
	"fmt"

	"github.com/katalvlaran/volstat/stats"
)

const (
	opVolatility  = "Volatility"
	opRollingMean = "RollingMean"
)

// Volatility returns the population standard deviation of every contiguous
// window of w.Size() samples, left to right.
//
// The population convention is fixed; rampUp is ignored (see Window.Trim).
//
// Errors:
//   - ErrInvalidWindowSize for a zero-value Window.
//   - ErrWindowLargerThanSeries when w.Size() > len(series); no partial data
//     is returned.
func Volatility(series []float64, w Window) ([]float64, error) {
	return slide(opVolatility, series, w, populationStdDev)
}

// MustVolatility is like Volatility but panics when the precondition is violated.
func MustVolatility(series []float64, w Window) []float64 {
	out, err := Volatility(series, w)
	if err != nil {
		panic(err)
	}

	return out
}

// RollingMean returns the population mean of every contiguous window.
// Errors mirror Volatility.
func RollingMean(series []float64, w Window) ([]float64, error) {
	return slide(opRollingMean, series, w, populationMean)
}

// slide validates the window against the series and applies reduce to each
// window position.
func slide(op string, series []float64, w Window, reduce func([]float64) float64) ([]float64, error) {
	if w.size < minSize {
		return nil, fmt.Errorf("%s: %v: %w", op, w, ErrInvalidWindowSize)
	}
	n := len(series)
	if w.size > n {
		return nil, fmt.Errorf("%s: size=%d > len(series)=%d: %w", op, w.size, n, ErrWindowLargerThanSeries)
	}

	out := make([]float64, w.Positions(n))
	for i := range out {
		out[i] = reduce(series[i : i+w.size])
	}

	return out, nil
}

// populationStdDev and populationMean never see an empty slice (size ≥ 1),
// so the absence flag is always true here.
func populationStdDev(xs []float64) float64 {
	sd, _ := stats.StandardDeviation(xs, stats.Population)
	return sd
}

func populationMean(xs []float64) float64 {
	m, _ := stats.Mean(xs, stats.Population)
	return m
}
