// SPDX-License-Identifier: MIT
// Package: volstat/builder
//
// impl_ohlc.go - deterministic OHLC series via discrete-time GBM with intraday steps.
//
// Purpose:
//   - Emit reproducible OHLC arrays for 'days' trading days along a GBM path.
//   - A small fixed number of intraday steps forms the high/low wicks.
//   - The close series is the usual input of window.Volatility.
//
// Contract:
//   - BuildOHLCSeries(days, seed, opts...) → (open[], high[], low[], close[]).
//   - On invalid input (days<1 or bad params) ⇒ nil slices; never panic.
//   - O(days * steps) time; O(days) memory.
//
// Invariants (per day):
//   - low ≤ min(open, close) ≤ max(open, close) ≤ high.

package builder

import (
	"math"
)

const (
	defOHLCStart     = 100.0  // Default initial price S0 (>0)
	defOHLCDailyMu   = 0.0005 // Default daily drift μ
	defOHLCDailyVol  = 0.02   // Default daily volatility σ (≥0)
	defIntradaySteps = 8      // Fixed intraday steps per day
)

// seqOHLCParams groups resolved knobs for the OHLC generator.
type seqOHLCParams struct {
	S0    float64 // initial price > 0
	mu    float64 // daily drift
	vol   float64 // daily volatility ≥ 0
	steps int     // intraday steps per day ≥ 1
}

// extractOHLCParams maps builderConfig → seqOHLCParams.
func extractOHLCParams(cfg builderConfig) seqOHLCParams {
	return seqOHLCParams{
		S0:    cfg.ohlcStart,
		mu:    cfg.ohlcMu,
		vol:   cfg.ohlcVol,
		steps: defIntradaySteps,
	}
}

// BuildOHLCSeries returns deterministic OHLC arrays for 'days' trading days.
// Model (discrete GBM per intraday step with Δt = 1/steps):
//
//	S_{t+1} = S_t * exp((μ - 0.5σ²)Δt + σ√Δt * Z),  Z ~ N(0,1).
func BuildOHLCSeries(days int, seed int64, opts ...BuilderOption) (open, high, low, close []float64) {
	if days < 1 {
		return nil, nil, nil, nil
	}

	cfg := newBuilderConfig(opts...)
	p := extractOHLCParams(cfg)
	if p.S0 <= 0 || p.vol < 0 || p.steps < 1 {
		return nil, nil, nil, nil
	}

	rng := rngFrom(cfg, seed)

	open = make([]float64, days)
	high = make([]float64, days)
	low = make([]float64, days)
	close = make([]float64, days)

	dt := 1.0 / float64(p.steps)
	drift := (p.mu - 0.5*p.vol*p.vol) * dt
	shock := p.vol * math.Sqrt(dt)

	S := p.S0
	for d := 0; d < days; d++ {
		open[d] = S
		hi, lo := S, S

		for s := 0; s < p.steps; s++ {
			S *= math.Exp(drift + shock*rng.NormFloat64())
			hi = math.Max(hi, S)
			lo = math.Min(lo, S)
		}

		// open seeded hi/lo and the last step visited close, so the
		// candle invariant holds without further clamping.
		close[d] = S
		high[d] = hi
		low[d] = lo
	}

	return open, high, low, close
}
