// SPDX-License-Identifier: MIT
// Package: volstat/builder
//
// api.go - thin public entry-point over the individual generators.
//
// Design contract (strict):
//   - Generate(name, n, seed, opts...) dispatches to BuildUniform / BuildPulse /
//     BuildAudioChirp / BuildOHLCSeries (close prices) by name.
//   - Build* helpers return nil on invalid input; Generate turns that into
//     sentinel errors for callers that need a reason (CLI, reports).
//   - Determinism: same name/n/seed/options ⇒ identical series.

package builder

import (
	"fmt"
	"strings"
)

// Generate builds a series of length n with the named generator.
//
// Errors:
//   - ErrBadSize when n < MinSeriesLen.
//   - ErrUnknownGenerator for names outside Generators.
//   - ErrConstructFailed when the generator rejected its parameters.
func Generate(name string, n int, seed int64, opts ...BuilderOption) ([]float64, error) {
	method := strings.ToLower(strings.TrimSpace(name))

	var build func() []float64
	switch method {
	case MethodUniform:
		build = func() []float64 { return BuildUniform(n, seed, opts...) }
	case MethodPulse:
		build = func() []float64 { return BuildPulse(n, seed, opts...) }
	case MethodChirp:
		build = func() []float64 { return BuildAudioChirp(n, seed, opts...) }
	case MethodOHLC:
		build = func() []float64 {
			_, _, _, closes := BuildOHLCSeries(n, seed, opts...)
			return closes
		}
	default:
		return nil, fmt.Errorf("Generate: %q (want one of %s): %w",
			name, strings.Join(Generators, ", "), ErrUnknownGenerator)
	}

	if err := validateMin(method, n, MinSeriesLen); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	out := build()
	if out == nil {
		return nil, builderErrorf(method, ErrConstructFailed, "generator produced no data for n=%d", n)
	}

	return out, nil
}
