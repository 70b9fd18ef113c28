// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volstat/internal/config"
	"github.com/katalvlaran/volstat/window"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	err := app.Run(append([]string{"volstat"}, args...))
	return out.String(), err
}

func TestRun_Values(t *testing.T) {
	out, err := runApp(t, "--values", "1,2,3", "-w", "2", "--log", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "source      values\n")
	assert.Contains(t, out, "mean        2.000000\n")
	assert.Contains(t, out, "vol[0]      0.500000\n")
	assert.Contains(t, out, "vol[1]      0.500000\n")
}

func TestRun_SampleConvention(t *testing.T) {
	out, err := runApp(t, "--values", "1 2 3", "--sample", "-w", "3", "--log", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "convention  sample\n")
	assert.Contains(t, out, "mean (n-1)  3.000000\n")
	assert.Contains(t, out, "variance    1.000000\n")
}

func TestRun_SampleFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "volstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("convention: sample\n"), 0o600))

	out, err := runApp(t, "-c", path, "--values", "1 2 3", "--sample=false", "-w", "3", "--log", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "convention  population\n")
	assert.Contains(t, out, "mean        2.000000\n")
	assert.Contains(t, out, "variance    0.666667\n")

	// Without the flag the file's convention stands.
	out, err = runApp(t, "-c", path, "--values", "1 2 3", "-w", "3", "--log", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "convention  sample\n")
}

func TestRun_Generator(t *testing.T) {
	out, err := runApp(t, "-g", "pulse", "-n", "16", "-w", "4", "--ramp-up", "3", "--log", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "source      pulse\n")
	assert.NotContains(t, out, "vol[2]")
	assert.Contains(t, out, "vol[3]")
	assert.Contains(t, out, "vol[12]")
}

func TestRun_Errors(t *testing.T) {
	_, err := runApp(t, "--values", "1,2", "-w", "3", "--log", "error")
	assert.ErrorIs(t, err, window.ErrWindowLargerThanSeries)

	_, err = runApp(t, "-w", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
