// SPDX-License-Identifier: MIT
// Package: volstat/window
//
// window.go — immutable sliding-window descriptor.
//
// Contract:
//   - New validates once: size ≥ 1, rampUp ≥ 0. A constructed Window is
//     always valid; fields are unexported so it cannot be mutated afterwards.
//   - MustNew panics on invalid input (programmer error), mirroring the
//     option-constructor policy used elsewhere in the module.

package window

import "fmt"

const (
	opNew     = "New"
	minSize   = 1
	minRampUp = 0
)

// Window describes a fixed-size sliding window.
//
// size   — number of samples a window spans (≥ 1).
// rampUp — number of leading output values the caller treats as warm-up.
type Window struct {
	size   int
	rampUp int
}

// New returns a validated Window.
//
// Errors:
//   - ErrInvalidWindowSize if size < 1.
//   - ErrInvalidRampUp if rampUp < 0.
func New(size, rampUp int) (Window, error) {
	if size < minSize {
		return Window{}, fmt.Errorf("%s: size=%d: %w", opNew, size, ErrInvalidWindowSize)
	}
	if rampUp < minRampUp {
		return Window{}, fmt.Errorf("%s: rampUp=%d: %w", opNew, rampUp, ErrInvalidRampUp)
	}

	return Window{size: size, rampUp: rampUp}, nil
}

// MustNew is like New but panics on invalid parameters.
func MustNew(size, rampUp int) Window {
	w, err := New(size, rampUp)
	if err != nil {
		panic(err)
	}

	return w
}

// Size returns the number of samples spanned by one window.
func (w Window) Size() int { return w.size }

// RampUp returns the warm-up count carried as metadata.
func (w Window) RampUp() int { return w.rampUp }

// String implements fmt.Stringer.
func (w Window) String() string {
	return fmt.Sprintf("Window(size=%d, rampUp=%d)", w.size, w.rampUp)
}

// Positions reports how many window placements fit in a series of length n:
// n − size + 1, or 0 when the series is shorter than the window.
func (w Window) Positions(n int) int {
	if w.size < minSize || n < w.size {
		return 0
	}

	return n - w.size + 1
}

// Trim drops the first RampUp values of a transform output.
// The result aliases out when non-empty; it is an empty, non-nil slice when
// RampUp ≥ len(out), including for a nil out.
func (w Window) Trim(out []float64) []float64 {
	if w.rampUp >= len(out) {
		return []float64{}
	}

	return out[w.rampUp:]
}
