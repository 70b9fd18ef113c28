// SPDX-License-Identifier: MIT

// Package report turns a resolved configuration into whole-series statistics
// plus a rolling volatility profile, logging each step.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/volstat/builder"
	"github.com/katalvlaran/volstat/internal/config"
	"github.com/katalvlaran/volstat/stats"
	"github.com/katalvlaran/volstat/window"
)

// SourceValues marks a report built from explicit values rather than a generator.
const SourceValues = "values"

// Report is the outcome of one run.
type Report struct {
	Source     string
	Series     []float64
	Summary    stats.Summary
	Window     window.Window
	Volatility []float64 // every window position
	Reported   []float64 // Volatility without the ramp-up prefix
}

// Build obtains the series described by cfg and computes the report.
// cfg must have passed Validate.
func Build(cfg config.Config, log logrus.FieldLogger) (Report, error) {
	series, source, err := loadSeries(cfg)
	if err != nil {
		return Report{}, err
	}
	log.WithFields(logrus.Fields{"source": source, "n": len(series)}).Debug("series ready")

	isSample := cfg.IsSample()
	summary, err := stats.Summarize(series, isSample)
	if err != nil {
		return Report{}, fmt.Errorf("summary: %w", err)
	}
	log.WithFields(logrus.Fields{
		"convention": stats.ConventionName(isSample),
		"mean":       summary.Mean,
		"std":        summary.StdDev,
	}).Debug("summary computed")

	w, err := window.New(cfg.Window, cfg.RampUp)
	if err != nil {
		return Report{}, err
	}
	vol, err := window.Volatility(series, w)
	if err != nil {
		return Report{}, err
	}
	reported := w.Trim(vol)
	if len(reported) == 0 {
		log.WithField("window", w.String()).Warn("ramp-up discards every volatility value")
	}
	log.WithFields(logrus.Fields{"window": w.String(), "positions": len(vol)}).Debug("volatility computed")

	return Report{
		Source:     source,
		Series:     series,
		Summary:    summary,
		Window:     w,
		Volatility: vol,
		Reported:   reported,
	}, nil
}

func loadSeries(cfg config.Config) ([]float64, string, error) {
	if len(cfg.Values) > 0 {
		return builder.FromSlice(cfg.Values), SourceValues, nil
	}

	series, err := builder.Generate(cfg.Generator, cfg.Length, cfg.Seed)
	if err != nil {
		return nil, "", err
	}

	return series, cfg.Generator, nil
}

// WriteTo renders the report as aligned text.
func (r Report) WriteTo(out io.Writer) (int64, error) {
	cw := &countingWriter{w: out}
	tw := tabwriter.NewWriter(cw, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "source\t%s\n", r.Source)
	fmt.Fprintf(tw, "samples\t%d\n", r.Summary.N)
	fmt.Fprintf(tw, "convention\t%s\n", stats.ConventionName(r.Summary.Sample))
	fmt.Fprintf(tw, "%s\t%.6f\n", meanLabel(r.Summary.Sample), r.Summary.Mean)
	fmt.Fprintf(tw, "variance\t%.6f\n", r.Summary.Variance)
	fmt.Fprintf(tw, "stddev\t%.6f\n", r.Summary.StdDev)
	fmt.Fprintf(tw, "window\t%s\n", r.Window)

	skipped := len(r.Volatility) - len(r.Reported)
	for i, v := range r.Reported {
		fmt.Fprintf(tw, "vol[%d]\t%.6f\n", i+skipped, v)
	}
	if err := tw.Flush(); err != nil {
		return cw.n, err
	}

	return cw.n, cw.err
}

// meanLabel names the mean row. Under the sample convention the mean divides
// by n−1, so the label carries the denominator.
func meanLabel(isSample bool) string {
	if isSample {
		return "mean (n-1)"
	}
	return "mean"
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	if err != nil && c.err == nil {
		c.err = err
	}
	return n, err
}
