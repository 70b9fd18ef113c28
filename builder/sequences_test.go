// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volstat/builder"
)

func TestFromSlice(t *testing.T) {
	t.Parallel()

	src := []float64{1.0, 2.0, 3.0}
	got := builder.FromSlice(src)
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, got)

	src[0] = 99
	assert.Equal(t, 1.0, got[0], "FromSlice must copy")

	ints := builder.FromSlice([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, ints)

	empty := builder.FromSlice[int32](nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestBuildUniform(t *testing.T) {
	t.Parallel()

	xs := builder.BuildUniform(10, 1)
	require.Len(t, xs, 10)
	for i, v := range xs {
		assert.True(t, v >= 0 && v < 1, "xs[%d]=%v outside [0,1)", i, v)
	}

	// Determinism per seed.
	assert.Equal(t, xs, builder.BuildUniform(10, 1))
	assert.NotEqual(t, xs, builder.BuildUniform(10, 2))

	// Custom range.
	ys := builder.BuildUniform(200, 5, builder.WithRange(-3, -2))
	for i, v := range ys {
		assert.True(t, v >= -3 && v < -2, "ys[%d]=%v outside [-3,-2)", i, v)
	}

	assert.Nil(t, builder.BuildUniform(0, 1))
	assert.Nil(t, builder.BuildUniform(-1, 1))
}

func TestBuildUniform_SharedStream(t *testing.T) {
	t.Parallel()

	// One shared RNG: consecutive calls continue the same stream.
	r := rand.New(rand.NewSource(77))
	a := builder.BuildUniform(3, 0, builder.WithRand(r))
	b := builder.BuildUniform(3, 0, builder.WithRand(r))

	whole := builder.BuildUniform(6, 0, builder.WithSeed(77))
	assert.Equal(t, whole, append(a, b...))
}

func TestBuildPulse(t *testing.T) {
	t.Parallel()

	xs := builder.BuildPulse(16, 0)
	require.Len(t, xs, 16)
	// Default f0=1/8, duty=0.5: four samples high, four low.
	assert.Equal(t, []float64{1, 1, 1, 1, 0, 0, 0, 0}, xs[:8])

	amp := builder.BuildPulse(8, 0, builder.WithAmplitude(3), builder.WithTrend(1))
	assert.Equal(t, []float64{3, 4, 5, 6, 4, 5, 6, 7}, amp)

	noisy := builder.BuildPulse(32, 9, builder.WithNoise(0.1))
	assert.Equal(t, noisy, builder.BuildPulse(32, 9, builder.WithNoise(0.1)))
	assert.NotEqual(t, xs, noisy[:16])

	assert.Nil(t, builder.BuildPulse(0, 0))
}

func TestBuildAudioChirp(t *testing.T) {
	t.Parallel()

	xs := builder.BuildAudioChirp(64, 0, builder.WithAmplitude(2))
	require.Len(t, xs, 64)
	for i, v := range xs {
		assert.LessOrEqual(t, v, 2.0+1e-12, "xs[%d]", i)
		assert.GreaterOrEqual(t, v, -2.0-1e-12, "xs[%d]", i)
	}
	assert.Len(t, builder.BuildAudioChirp(1, 0), 1)
	assert.Nil(t, builder.BuildAudioChirp(0, 0))
}

func TestBuildOHLCSeries(t *testing.T) {
	t.Parallel()

	open, high, low, closes := builder.BuildOHLCSeries(30, 4)
	require.Len(t, open, 30)
	require.Len(t, closes, 30)
	assert.Equal(t, 100.0, open[0])

	for d := range open {
		assert.LessOrEqual(t, low[d], open[d], "day %d", d)
		assert.LessOrEqual(t, low[d], closes[d], "day %d", d)
		assert.GreaterOrEqual(t, high[d], open[d], "day %d", d)
		assert.GreaterOrEqual(t, high[d], closes[d], "day %d", d)
		if d > 0 {
			assert.Equal(t, closes[d-1], open[d], "gapless: open[%d] == close[%d]", d, d-1)
		}
	}

	// Zero volatility and drift: a flat path at S0.
	_, _, _, flat := builder.BuildOHLCSeries(5, 4, builder.WithOHLC(42, 0, 0))
	for _, v := range flat {
		assert.InDelta(t, 42.0, v, 1e-9)
	}

	o, h, l, c := builder.BuildOHLCSeries(0, 1)
	assert.Nil(t, o)
	assert.Nil(t, h)
	assert.Nil(t, l)
	assert.Nil(t, c)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	for _, name := range builder.Generators {
		xs, err := builder.Generate(name, 12, 3)
		require.NoError(t, err, name)
		assert.Len(t, xs, 12, name)
	}

	xs, err := builder.Generate(" Uniform ", 4, 8)
	require.NoError(t, err)
	assert.Equal(t, builder.BuildUniform(4, 8), xs)

	_, _, _, closes := builder.BuildOHLCSeries(6, 2)
	xs, err = builder.Generate(builder.MethodOHLC, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, closes, xs)

	_, err = builder.Generate("brownian", 4, 0)
	assert.ErrorIs(t, err, builder.ErrUnknownGenerator)

	_, err = builder.Generate(builder.MethodPulse, 0, 0)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestBuildPulse_Shapes(t *testing.T) {
	t.Parallel()

	// Duty 0.25 over a period of 8: two samples high.
	xs := builder.BuildPulse(8, 0, builder.WithDuty(0.25))
	assert.Equal(t, []float64{1, 1, 0, 0, 0, 0, 0, 0}, xs)

	assert.Equal(t, make([]float64, 8), builder.BuildPulse(8, 0, builder.WithDuty(0)))

	// Triangular envelope: 1 − |2·frac − 1| with frac = i/8.
	tri := builder.BuildPulse(8, 0, builder.WithTriangular(), builder.WithAmplitude(4))
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 3, 2, 1}, tri)
}
