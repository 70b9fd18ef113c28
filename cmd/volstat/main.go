// SPDX-License-Identifier: MIT

// Command volstat prints descriptive statistics and rolling volatility for a
// numeric series, either supplied with --values or generated by a builder.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/katalvlaran/volstat/builder"
	"github.com/katalvlaran/volstat/internal/config"
	"github.com/katalvlaran/volstat/internal/report"
	"github.com/katalvlaran/volstat/stats"
)

// BuildVersion is set at link time.
var BuildVersion = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Error("volstat failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "volstat"
	app.Usage = "descriptive statistics and rolling volatility of a numeric series"
	app.Version = BuildVersion
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "optional config file (yaml, json, toml)",
		},
		cli.StringFlag{
			Name:  "generator, g",
			Usage: "series generator: " + strings.Join(builder.Generators, ", "),
		},
		cli.IntFlag{
			Name:  "length, n",
			Usage: "generated series length",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "generator seed",
		},
		cli.StringFlag{
			Name:  "values",
			Usage: "explicit series, comma or space separated (overrides the generator)",
		},
		cli.IntFlag{
			Name:  "window, w",
			Usage: "rolling volatility window size",
		},
		cli.IntFlag{
			Name:  "ramp-up",
			Usage: "leading volatility values to drop from the report",
		},
		cli.BoolFlag{
			Name:  "sample",
			Usage: "use the sample (n-1) convention for whole-series statistics (--sample=false forces population)",
		},
		cli.StringFlag{
			Name:  "log, l",
			Usage: "log level: debug,info,warning,error",
		},
	}
	app.Action = run

	return app
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), overrides(c))
	if err != nil {
		return err
	}

	lv, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logrus.StandardLogger()
	log.SetLevel(lv)
	log.SetOutput(os.Stderr)
	log.WithFields(logrus.Fields{
		"generator": cfg.Generator,
		"window":    cfg.Window,
		"ramp_up":   cfg.RampUp,
	}).Info("starting volstat")

	r, err := report.Build(cfg, log)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	_, err = r.WriteTo(c.App.Writer)

	return err
}

// overrides collects only the flags set on the command line, so flag defaults
// never mask config-file or environment values.
func overrides(c *cli.Context) map[string]interface{} {
	o := make(map[string]interface{})
	if c.IsSet("generator") {
		o[config.KeyGenerator] = c.String("generator")
	}
	if c.IsSet("length") {
		o[config.KeyLength] = c.Int("length")
	}
	if c.IsSet("seed") {
		o[config.KeySeed] = c.Int64("seed")
	}
	if c.IsSet("values") {
		o[config.KeyValues] = c.String("values")
	}
	if c.IsSet("window") {
		o[config.KeyWindow] = c.Int("window")
	}
	if c.IsSet("ramp-up") {
		o[config.KeyRampUp] = c.Int("ramp-up")
	}
	if c.IsSet("sample") {
		o[config.KeyConvention] = stats.ConventionName(c.Bool("sample"))
	}
	if c.IsSet("log") {
		o[config.KeyLogLevel] = c.String("log")
	}

	return o
}
