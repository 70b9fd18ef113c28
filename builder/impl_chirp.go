// SPDX-License-Identifier: MIT
// Package: volstat/builder
//
// impl_chirp.go - deterministic linear chirp generator.
//
// Purpose:
//   - Produce a 1-D linear chirp (frequency sweep from f0 to f1); a series
//     whose local dispersion changes smoothly along its length.
//   - Optional linear trend and Gaussian noise.
//
// Contract:
//   - BuildAudioChirp(n, seed, opts...) returns a slice of length n (or nil).
//   - O(n) time, O(n) memory. No panics. No global state.

package builder

import (
	"math"
)

const (
	defChirpF0 = 0.02 // start frequency (cycles/sample) > 0
	defChirpF1 = 0.25 // end   frequency (cycles/sample) > 0
)

// τ = 2π
const tau = 2.0 * math.Pi

type seqChirpParams struct {
	amp   float64 // amplitude > 0
	f0    float64 // start freq > 0
	f1    float64 // end   freq > 0
	sigma float64 // noise sigma ≥ 0
	trend float64 // linear trend increment per sample
}

func extractChirpParams(cfg builderConfig) seqChirpParams {
	return seqChirpParams{
		amp:   cfg.amplitude,
		f0:    cfg.frequencyOr(defChirpF0),
		f1:    defChirpF1,
		sigma: cfg.noiseSigma,
		trend: cfg.trendK,
	}
}

// BuildAudioChirp returns a length-n linear chirp: f sweeps from f0 to f1.
// Model:
//   - fi  = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator, τ=2π)
//   - yᵢ  = A * sin(θᵢ) + trend*i + noise
func BuildAudioChirp(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newBuilderConfig(opts...)
	p := extractChirpParams(cfg)
	if p.amp <= 0 || p.f0 <= 0 || p.f1 <= 0 || p.sigma < 0 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	// Phase accumulator (start at 0 for reproducibility).
	theta := unitZero

	var (
		t  float64 // normalized position in [0,1]
		fi float64 // instantaneous frequency at sample i
	)

	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		} else {
			t = unitZero
		}

		fi = p.f0 + (p.f1-p.f0)*t
		theta += tau * fi

		out[i] = addTrendNoise(p.amp*math.Sin(theta), i, p.trend, p.sigma, rng)
	}

	return out
}
