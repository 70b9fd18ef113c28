// SPDX-License-Identifier: MIT
// Package: volstat/stats
//
// stats.go — generic mean / variance / standard deviation.
//
// Purpose:
//   - Compute whole-series descriptive statistics under a selectable
//     population (n) or sample (n−1) denominator.
//   - Report degenerate lengths as absence (ok=false), never as NaN/±Inf.
//
// Contract:
//   - The series is borrowed read-only; no allocations beyond the call frame.
//   - Denominator policy is centralised in denominator(); every primitive
//     shares the same absence rules.
//
// Complexity:
//   - Mean: O(n). Variance/StandardDeviation: O(n), two passes.

package stats

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted by the primitives: every
// built-in integer and floating-point type. Each element is widened to
// float64 before any arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Denominator conventions for the isSample flag.
const (
	Population = false // divide by n
	Sample     = true  // divide by n−1
)

// Mean returns Σx / d where d = n (population) or n−1 (sample).
//
// ok=false when the series is empty, or when isSample is set and the series
// has a single element (the n−1 denominator would be zero).
func Mean[T Number](series []T, isSample bool) (float64, bool) {
	d, ok := denominator(len(series), isSample)
	if !ok {
		return 0, false
	}

	return sum(series) / d, true
}

// Variance returns the sum of squared deviations from the arithmetic mean
// divided by n (population) or n−1 (sample).
//
// Absence rules are those of Mean with the same isSample flag. The result is
// non-negative by construction.
func Variance[T Number](series []T, isSample bool) (float64, bool) {
	d, ok := denominator(len(series), isSample)
	if !ok {
		return 0, false
	}

	// Pass 1: centre on the arithmetic mean (always Σx/n).
	mu := sum(series) / float64(len(series))

	// Pass 2: accumulate squared deviations.
	return sumSquaredDeviations(series, mu) / d, true
}

// StandardDeviation returns the square root of Variance; absence propagates.
func StandardDeviation[T Number](series []T, isSample bool) (float64, bool) {
	v, ok := Variance(series, isSample)
	if !ok {
		return 0, false
	}

	return math.Sqrt(v), true
}

// denominator resolves the divisor for a series of length n.
// Population needs n ≥ 1, sample needs n ≥ 2.
func denominator(n int, isSample bool) (float64, bool) {
	if n == 0 {
		return 0, false
	}
	if isSample {
		if n <= 1 {
			return 0, false
		}
		return float64(n - 1), true
	}

	return float64(n), true
}

func sum[T Number](series []T) float64 {
	var s float64
	for _, v := range series {
		s += float64(v)
	}

	return s
}

func sumSquaredDeviations[T Number](series []T, mu float64) float64 {
	var (
		ss, dev float64
	)
	for _, v := range series {
		dev = float64(v) - mu
		ss += dev * dev
	}

	return ss
}
