// SPDX-License-Identifier: MIT
// Package: volstat/builder
//
// impl_pulse.go — deterministic rectangular/triangular pulse generator.
//
// Purpose:
//   • Provide a reproducible 1-D pulse sequence, e.g. a regime-switching input
//     whose rolling volatility spikes at every edge.
//   • Shape controls: rectangular (WithDuty, duty ∈ [0,1]) or triangular
//     (WithTriangular, 0..A envelope).
//   • Optional linear trend and additive Gaussian noise, both deterministic.
//
// Contract:
//   • BuildPulse(n, seed, opts...) returns a slice of length n (or nil on invalid input).
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and O(n) memory.

package builder

import (
	"math"
)

const (
	defBaseFreq   = 0.125 // Default base frequency f0 in cycles/sample (>0). Period ≈ 8.
	defDuty       = 0.5   // Default rectangular duty cycle in [0,1].
	defTriangular = false // Default shape: false=rectangular, true=triangular.
)

// seqPulseParams holds all resolved knobs for the pulse generator.
type seqPulseParams struct {
	amp        float64 // amplitude > 0
	f0         float64 // base frequency > 0 (cycles/sample)
	duty       float64 // rectangular duty in [0,1]
	triangular bool    // rectangular(false) or triangular(true)
	sigma      float64 // Gaussian noise sigma ≥ 0
	trend      float64 // linear trend increment per sample
}

// extractPulseParams maps builderConfig → seqPulseParams.
func extractPulseParams(cfg builderConfig) seqPulseParams {
	return seqPulseParams{
		amp:        cfg.amplitude,
		f0:         cfg.frequencyOr(defBaseFreq),
		duty:       cfg.duty,
		triangular: cfg.triangular,
		sigma:      cfg.noiseSigma,
		trend:      cfg.trendK,
	}
}

// BuildPulse returns a length-n pulse sequence with optional trend and noise.
// Shape:
//   - Rectangular: y ∈ {0, A} chosen by phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2*frac − 1| (no trig).
//
// Validation:
//   - If n < 1 ⇒ return nil (invalid request).
//   - If parameters are invalid (A≤0, f0≤0, duty∉[0,1], sigma<0) ⇒ return nil.
func BuildPulse(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newBuilderConfig(opts...)
	p := extractPulseParams(cfg)
	if p.amp <= 0 || p.f0 <= 0 || p.sigma < 0 || p.duty < 0 || p.duty > 1 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	var (
		frac float64 // phase fraction in [0,1)
		base float64 // base waveform before trend/noise
	)

	for i := 0; i < n; i++ {
		// frac = (i*f0) mod 1.
		frac = math.Mod(float64(i)*p.f0, unitOne)

		if p.triangular {
			base = p.amp * (unitOne - math.Abs(triDouble*frac-triCenter))
		} else if frac < p.duty {
			base = p.amp
		} else {
			base = unitZero
		}

		out[i] = addTrendNoise(base, i, p.trend, p.sigma, rng)
	}

	return out
}
