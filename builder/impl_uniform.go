// SPDX-License-Identifier: MIT
// Package: volstat/builder
//
// impl_uniform.go — uniform random series and slice construction.

package builder

import (
	"github.com/katalvlaran/volstat/stats"
)

// BuildUniform returns n samples drawn uniformly from [lo, hi)
// (default [0, 1), see WithRange).
//
// Determinism: cfg.rng (WithSeed/WithRand) wins over 'seed'; otherwise each
// call seeds its own stream, so equal (n, seed) yield equal series.
// Returns nil when n < 1.
func BuildUniform(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg, seed)

	span := cfg.rangeHi - cfg.rangeLo
	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.rangeLo + span*rng.Float64()
	}

	return out
}

// FromSlice wraps caller-provided values into a series owned by the caller of
// FromSlice: the returned slice is a copy, so later edits to values do not
// leak into computations. A nil or empty input yields an empty, non-nil series.
func FromSlice[T stats.Number](values []T) []T {
	out := make([]T, len(values))
	copy(out, values)

	return out
}
