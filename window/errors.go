// SPDX-License-Identifier: MIT
// Package: volstat/window
//
// errors.go — sentinel errors for the window package.
// Callers MUST branch with errors.Is; messages carry the "window:" prefix and
// operations attach context with %w.

package window

import "errors"

var (
	// ErrInvalidWindowSize is returned by New when size < 1, and by the
	// transforms when handed a zero-value Window that bypassed New.
	ErrInvalidWindowSize = errors.New("window: size must be >= 1")

	// ErrInvalidRampUp is returned by New when rampUp < 0.
	ErrInvalidRampUp = errors.New("window: ramp-up must be >= 0")

	// ErrWindowLargerThanSeries signals a transform invoked with
	// size > len(series). This is a caller defect, not a data condition.
	ErrWindowLargerThanSeries = errors.New("window: window larger than series")
)
