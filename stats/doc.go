// SPDX-License-Identifier: MIT

// Package stats computes descriptive statistics of one-dimensional numeric
// series: mean, variance and standard deviation.
//
// Every primitive is generic over Number (any built-in integer or float type)
// and takes an isSample flag selecting the denominator convention:
//
//	population (isSample=false) — divide by n
//	sample     (isSample=true)  — divide by n−1
//
// Absence is explicit. Each primitive returns (value, ok); ok=false means
// "no result" and is reported for:
//
//   - an empty series (both conventions);
//   - a series of length 1 under the sample convention.
//
// No sentinel numbers (NaN, −1) are ever used to signal absence, so a
// computed zero is always distinguishable from "no data".
//
// Variance uses the two-pass method: the arithmetic mean first, then the sum
// of squared deviations. The series is borrowed read-only.
//
// Usage:
//
//	v, ok := stats.Variance([]int{1, 2, 3}, false) // 0.666…, true
//	_, ok = stats.StandardDeviation([]float64{7}, true) // ok == false
//
// Callers that prefer error values can use Summarize, which maps absence to
// ErrEmptyInput / ErrInsufficientSample.
package stats
