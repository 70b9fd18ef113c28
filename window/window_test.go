// SPDX-License-Identifier: MIT

package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volstat/window"
)

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	w, err := window.New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Size())
	assert.Equal(t, 2, w.RampUp())
	assert.Equal(t, "Window(size=3, rampUp=2)", w.String())

	w, err = window.New(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Size())
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		size, rampUp int
		want         error
	}{
		{"zero size", 0, 0, window.ErrInvalidWindowSize},
		{"negative size", -4, 0, window.ErrInvalidWindowSize},
		{"negative ramp-up", 3, -1, window.ErrInvalidRampUp},
		{"size checked first", 0, -1, window.ErrInvalidWindowSize},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := window.New(tc.size, tc.rampUp)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { window.MustNew(0, 0) })
	assert.NotPanics(t, func() { window.MustNew(5, 1) })
}

func TestPositions(t *testing.T) {
	t.Parallel()

	w := window.MustNew(3, 0)
	assert.Equal(t, 8, w.Positions(10))
	assert.Equal(t, 1, w.Positions(3))
	assert.Equal(t, 0, w.Positions(2))
	assert.Equal(t, 0, w.Positions(0))

	var zero window.Window
	assert.Equal(t, 0, zero.Positions(10), "zero-value window has no positions")
}

func TestTrim(t *testing.T) {
	t.Parallel()

	out := []float64{0.1, 0.2, 0.3, 0.4}

	assert.Equal(t, out, window.MustNew(2, 0).Trim(out))
	assert.Equal(t, []float64{0.3, 0.4}, window.MustNew(2, 2).Trim(out))

	trimmed := window.MustNew(2, 9).Trim(out)
	assert.NotNil(t, trimmed)
	assert.Empty(t, trimmed)

	nilTrimmed := window.MustNew(2, 3).Trim(nil)
	assert.NotNil(t, nilTrimmed, "nil output still trims to an empty slice")
	assert.Empty(t, nilTrimmed)

	// Trim never touches the underlying values.
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, out)
}
