// SPDX-License-Identifier: MIT
// Package: volstat/stats
//
// errors.go — sentinel errors for the stats package.
//
// Error policy:
//   • The primitives (Mean/Variance/StandardDeviation) never return errors;
//     absence is reported through the comma-ok result.
//   • Summarize maps absence to the sentinels below so callers can branch
//     with errors.Is.

package stats

import "errors"

var (
	// ErrEmptyInput indicates a series with zero elements where at least one is required.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrInsufficientSample indicates a sample-convention statistic requested
	// on a series of length ≤ 1.
	ErrInsufficientSample = errors.New("stats: insufficient sample (need n ≥ 2)")
)

// ErrUnknownConvention indicates a convention name other than "population" or "sample".
var ErrUnknownConvention = errors.New("stats: unknown convention")
