// SPDX-License-Identifier: MIT
// Package: volstat/builder
//
// sequence_primitives.go - shared defaults and helpers for sequence builders.
//
// Purpose:
//   - Hold cross-sequence numeric constants.
//   - Provide deterministic RNG selection with cfg.rng priority.

package builder

import (
	"math/rand"
)

// Tiny numeric named constants.
const (
	unitZero  = 0.0 // named zero to avoid magic 0.0
	unitOne   = 1.0 // named one to avoid magic 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// addTrendNoise applies the shared post-processing of waveform generators:
// y += trend*i, then y += sigma*N(0,1) when sigma > 0.
func addTrendNoise(y float64, i int, trend, sigma float64, rng *rand.Rand) float64 {
	y += trend * float64(i)
	if sigma > 0 {
		y += sigma * rng.NormFloat64()
	}

	return y
}
