// SPDX-License-Identifier: MIT

// Package window implements fixed-size sliding windows over numeric series
// and the rolling volatility transform built on them.
//
// 🚀 What is rolling volatility?
//
//	For a series x of length n and a window of size w, the transform emits
//	one value per window position i = 0..n−w:
//
//	  vol[i] = σ_pop(x[i : i+w])
//
//	where σ_pop is the population standard deviation (denominator w).
//	Output index i maps 1:1 to the window starting at input index i
//	(left alignment, no centring, no padding), so len(vol) = n − w + 1.
//
// ✨ Key points:
//   - Window is an immutable (size, rampUp) descriptor validated once by New.
//   - rampUp is metadata only. Volatility never consults it; callers apply
//     their own warm-up policy, e.g. via Window.Trim.
//   - A window larger than the series is a caller bug: Volatility returns
//     ErrWindowLargerThanSeries and no data, never a truncated result.
//   - Every window reuses stats.Mean / stats.StandardDeviation under the
//     population convention, regardless of caller-level preferences.
//
// ⚙️ Usage:
//
//	w, err := window.New(3, 0)
//	if err != nil { /* ErrInvalidWindowSize / ErrInvalidRampUp */ }
//	vol, err := window.Volatility(series, w)
//	if err != nil { /* ErrWindowLargerThanSeries */ }
//	reported := w.Trim(vol) // drop warm-up values
//
// Performance:
//
//   - Time:   O(n·w) (two passes per window)
//   - Memory: O(n − w + 1) for the output
package window
