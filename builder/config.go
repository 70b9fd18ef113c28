// SPDX-License-Identifier: MIT
// Package: volstat/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng        = nil      (each call seeds its own stream from 'seed')
//   • range      = [0, 1)
//   • amplitude  = 1.0
//   • frequency  = 0        (unset → each generator's own default)
//   • trendK     = 0.0
//   • noiseSigma = 0.0
//   • duty       = 0.5      (rectangular pulse)
//   • ohlc       = S0 100, μ 0.0005, σ 0.02

package builder

import (
	"math/rand" // RNG for stochastic generators
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for stochastic draws; nil means "seed locally per call".
	rng *rand.Rand

	// Uniform range [rangeLo, rangeHi).
	rangeLo float64
	rangeHi float64

	// Waveform controls (Pulse/Chirp).
	amplitude  float64 // >0
	frequency  float64 // >0 when set; 0 = generator default
	trendK     float64 // any real
	noiseSigma float64 // >=0

	// Pulse shape.
	duty       float64 // rectangular duty in [0,1]
	triangular bool    // triangular envelope instead of rectangular

	// OHLC GBM controls.
	ohlcStart float64 // >0
	ohlcMu    float64 // any real
	ohlcVol   float64 // >=0
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultRangeLo    = 0.0 // uniform lower bound (inclusive)
	defaultRangeHi    = 1.0 // uniform upper bound (exclusive)
	defaultAmplitude  = 1.0 // waveform amplitude
	defaultFrequency  = 0.0 // unset marker
	defaultTrend      = 0.0 // linear trend coefficient
	defaultNoiseSigma = 0.0 // Gaussian noise stdev
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		rangeLo:    defaultRangeLo,
		rangeHi:    defaultRangeHi,
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
		duty:       defDuty,
		triangular: defTriangular,
		ohlcStart:  defOHLCStart,
		ohlcMu:     defOHLCDailyMu,
		ohlcVol:    defOHLCDailyVol,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// frequencyOr returns cfg.frequency when set, else def.
func (c builderConfig) frequencyOr(def float64) float64 {
	if c.frequency > 0 {
		return c.frequency
	}
	return def
}
