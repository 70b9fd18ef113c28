// SPDX-License-Identifier: MIT
// Package: volstat/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid series length (n < 1, days < 1).
// Usage: if errors.Is(err, ErrBadSize) { /* fix n/days */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrUnknownGenerator indicates a generator name not listed in Generators.
var ErrUnknownGenerator = errors.New("builder: unknown generator")

// ErrConstructFailed indicates a generator rejected its resolved parameters
// and produced no data.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel with the given method context and message.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
