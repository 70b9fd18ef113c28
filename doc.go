// SPDX-License-Identifier: MIT

// Package volstat computes descriptive statistics and rolling volatility over
// one-dimensional numeric series.
//
// 🚀 What is volstat?
//
//	A small, pure-Go toolkit for callers holding an in-memory series
//	(price closes, sensor readings) who need:
//		• Whole-series summaries: mean, variance, standard deviation
//		  under the population (n) or sample (n−1) convention
//		• Rolling volatility: population σ over every sliding window
//		• Deterministic series generators for tests and demos
//
// ✨ Why volstat?
//
//   - Explicit absence – degenerate inputs return (0, false), never NaN
//   - Generic – any built-in integer or float element type
//   - Loud precondition failures – an oversized window is an error, not an
//     empty slice
//
// Under the hood, everything is organized under these packages:
//
//	stats/    — Mean, Variance, StandardDeviation, Summarize
//	window/   — Window descriptor, Volatility, RollingMean, ramp-up Trim
//	builder/  — FromSlice, BuildUniform, BuildPulse, BuildAudioChirp, BuildOHLCSeries
//	cmd/volstat — command line front end
//
// Quick example:
//
//	xs := builder.BuildUniform(10, 42)
//	sd, ok := stats.StandardDeviation(xs, stats.Sample)
//	vol, err := window.Volatility(xs, window.MustNew(3, 0)) // len(vol) == 8
//
//	go get github.com/katalvlaran/volstat
package volstat
