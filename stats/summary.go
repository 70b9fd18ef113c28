// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"strings"
)

// Operation name constants for error wrapping.
const (
	opSummarize        = "Summarize"
	opParseConvention  = "ParseConvention"
	conventionPopName  = "population"
	conventionSampName = "sample"
)

// Summary bundles the three descriptive statistics of one series computed
// under a single convention.
type Summary struct {
	N        int     // number of samples
	Sample   bool    // convention used (true = n−1)
	Mean     float64 // Mean(series, Sample)
	Variance float64 // Variance(series, Sample)
	StdDev   float64 // StandardDeviation(series, Sample)
}

// Summarize computes Mean, Variance and StandardDeviation in one call.
//
// Errors:
//   - ErrEmptyInput when the series is empty.
//   - ErrInsufficientSample when isSample is set and len(series) == 1.
func Summarize[T Number](series []T, isSample bool) (Summary, error) {
	n := len(series)
	if n == 0 {
		return Summary{}, fmt.Errorf("%s: %w", opSummarize, ErrEmptyInput)
	}
	if isSample && n <= 1 {
		return Summary{}, fmt.Errorf("%s: n=%d: %w", opSummarize, n, ErrInsufficientSample)
	}

	// Absence is excluded by the checks above; the ok flags are redundant here.
	mean, _ := Mean(series, isSample)
	variance, _ := Variance(series, isSample)
	std, _ := StandardDeviation(series, isSample)

	return Summary{
		N:        n,
		Sample:   isSample,
		Mean:     mean,
		Variance: variance,
		StdDev:   std,
	}, nil
}

// ConventionName renders the isSample flag as "population" or "sample".
func ConventionName(isSample bool) string {
	if isSample {
		return conventionSampName
	}
	return conventionPopName
}

// ParseConvention is the inverse of ConventionName (case-insensitive).
// Unknown names yield ErrUnknownConvention.
func ParseConvention(name string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case conventionPopName:
		return Population, nil
	case conventionSampName:
		return Sample, nil
	default:
		return false, fmt.Errorf("%s: %q: %w", opParseConvention, name, ErrUnknownConvention)
	}
}
