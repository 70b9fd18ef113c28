// SPDX-License-Identifier: MIT

// Package builder provides validation helpers for the Generate entry point.
//
// Each function returns a wrapped sentinel when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: length must be ≥ <min>, got <got>: builder: invalid size/length".
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadSize, "length must be ≥ %d, got %d", min, got)
	}

	return nil
}
