// SPDX-License-Identifier: MIT

// Package builder constructs and generates one-dimensional numeric series for
// the statistics and window packages.
//
// The package offers the following key components:
//
//   - Construction:
//     – FromSlice:        copy caller values into an owned series (any Number type).
//   - Deterministic generators (return nil on invalid input, never panic):
//     – BuildUniform:     i.i.d. samples in [lo, hi), default [0, 1).
//     – BuildPulse:       rectangular (WithDuty) or triangular (WithTriangular) pulse train.
//     – BuildAudioChirp:  linear frequency sweep.
//     – BuildOHLCSeries:  daily OHLC candles along a GBM path.
//     – Generate:         name-based dispatch with sentinel errors.
//   - Configuration primitives:
//     – BuilderOption:    a function that mutates builderConfig before use.
//     – WithSeed/WithRand, WithRange, WithAmplitude, WithFrequency,
//     WithTrend, WithNoise, WithDuty, WithTriangular, WithOHLC.
//
// Guarantees:
//
//   - Determinism: same inputs, options and seed ⇒ identical series.
//     A shared RNG (WithSeed/WithRand) takes priority over the per-call seed.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors from Generate, matched with errors.Is.
//   - O(n) time and memory per generator.
package builder
