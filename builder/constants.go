// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by the series generators.
package builder

//-----------------------------------------------------------------------------
// Generator names
//   accepted by Generate and used to prefix errors for context.
//-----------------------------------------------------------------------------

const (
	// MethodUniform is the canonical name for BuildUniform.
	MethodUniform = "uniform"
	// MethodPulse is the canonical name for BuildPulse.
	MethodPulse = "pulse"
	// MethodChirp is the canonical name for BuildAudioChirp.
	MethodChirp = "chirp"
	// MethodOHLC is the canonical name for the close series of BuildOHLCSeries.
	MethodOHLC = "ohlc"
)

// MinSeriesLen is the smallest length any generator accepts.
const MinSeriesLen = 1

// Generators lists the names accepted by Generate, in documentation order.
var Generators = []string{MethodUniform, MethodPulse, MethodChirp, MethodOHLC}
