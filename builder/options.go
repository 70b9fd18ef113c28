// SPDX-License-Identifier: MIT
// Package: volstat/builder
//
// options.go — functional options for the series generators.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic; they return nil on invalid requests.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic generators
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before any sample is produced.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared across generator calls.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// It overrides the per-call seed argument of every generator.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange sets the half-open interval [lo, hi) for BuildUniform.
// Panics unless lo < hi.
func WithRange(lo, hi float64) BuilderOption {
	if !(lo < hi) {
		panic("builder: WithRange(lo>=hi)")
	}
	return func(c *builderConfig) {
		c.rangeLo, c.rangeHi = lo, hi
	}
}

// WithAmplitude sets the sequence amplitude A (>0) for Pulse/Chirp.
// Panics if A <= 0 to avoid degenerate outputs.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) {
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 (>0, cycles/sample) for pulses and
// the start frequency of chirps. Panics if f0 <= 0.
func WithFrequency(f0 float64) BuilderOption {
	if f0 <= 0 {
		panic("builder: WithFrequency(f0<=0)")
	}
	return func(c *builderConfig) {
		c.frequency = f0
	}
}

// WithTrend sets the linear trend coefficient k for Pulse/Chirp (y += k*i).
// Any real value is accepted (including 0).
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) {
		c.trendK = k
	}
}

// WithNoise sets additive Gaussian noise sigma (>=0) for Pulse/Chirp.
// Panics if sigma < 0. Noise draws come from the resolved RNG.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noiseSigma = sigma
	}
}

// WithOHLC sets the GBM parameters of BuildOHLCSeries: start price S0 (>0),
// daily drift mu and daily volatility vol (>=0). Panics on S0<=0 or vol<0.
func WithOHLC(S0, mu, vol float64) BuilderOption {
	if S0 <= 0 {
		panic("builder: WithOHLC(S0<=0)")
	}
	if vol < 0 {
		panic("builder: WithOHLC(vol<0)")
	}
	return func(c *builderConfig) {
		c.ohlcStart, c.ohlcMu, c.ohlcVol = S0, mu, vol
	}
}

// WithDuty sets the fraction of each BuildPulse period spent at amplitude A
// (rectangular shape). Panics unless 0 <= d <= 1.
func WithDuty(d float64) BuilderOption {
	if d < 0 || d > 1 {
		panic("builder: WithDuty(d outside [0,1])")
	}
	return func(c *builderConfig) {
		c.duty = d
		c.triangular = false
	}
}

// WithTriangular switches BuildPulse to a triangular envelope rising from 0 to
// A and back over each period. A later WithDuty restores the rectangular shape.
func WithTriangular() BuilderOption {
	return func(c *builderConfig) {
		c.triangular = true
	}
}
