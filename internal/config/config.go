// SPDX-License-Identifier: MIT

// Package config loads the volstat command configuration.
//
// Sources, lowest to highest priority: built-in defaults, an optional config
// file (any format viper understands: yaml, json, toml), VOLSTAT_* environment
// variables, then explicit overrides (command line flags).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/katalvlaran/volstat/builder"
	"github.com/katalvlaran/volstat/stats"
)

// Keys shared by the config file, environment and flag overrides.
const (
	KeyGenerator  = "generator"
	KeyLength     = "length"
	KeySeed       = "seed"
	KeyValues     = "values"
	KeyWindow     = "window"
	KeyRampUp     = "ramp_up"
	KeyConvention = "convention"
	KeyLogLevel   = "log_level"

	envPrefix = "VOLSTAT"
)

// ErrInvalidConfig is wrapped by every Load/Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved configuration of one volstat run.
type Config struct {
	// Generator names the builder used when Values is empty.
	Generator string
	// Length of the generated series.
	Length int
	// Seed for the generator RNG.
	Seed int64
	// Values, when non-empty, is analysed instead of a generated series.
	Values []float64
	// Window is the rolling volatility window size.
	Window int
	// RampUp leading volatility values are dropped from the report.
	RampUp int
	// Convention is "population" or "sample" for whole-series statistics.
	Convention string
	// LogLevel is a logrus level name.
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generator:  builder.MethodUniform,
		Length:     10,
		Seed:       1,
		Window:     3,
		RampUp:     0,
		Convention: stats.ConventionName(stats.Population),
		LogLevel:   logrus.InfoLevel.String(),
	}
}

// Load resolves the configuration from path (optional, "" skips the file),
// the environment and overrides, then validates it.
func Load(path string, overrides map[string]interface{}) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyGenerator, def.Generator)
	v.SetDefault(KeyLength, def.Length)
	v.SetDefault(KeySeed, def.Seed)
	v.SetDefault(KeyWindow, def.Window)
	v.SetDefault(KeyRampUp, def.RampUp)
	v.SetDefault(KeyConvention, def.Convention)
	v.SetDefault(KeyLogLevel, def.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read %s: %v: %w", path, err, ErrInvalidConfig)
		}
	}

	for k, val := range overrides {
		v.Set(k, val)
	}

	cfg, err := fromViper(v)
	if err != nil {
		return Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func fromViper(v *viper.Viper) (Config, error) {
	length, err := cast.ToIntE(v.Get(KeyLength))
	if err != nil {
		return Config{}, invalid(KeyLength, err)
	}
	seed, err := cast.ToInt64E(v.Get(KeySeed))
	if err != nil {
		return Config{}, invalid(KeySeed, err)
	}
	size, err := cast.ToIntE(v.Get(KeyWindow))
	if err != nil {
		return Config{}, invalid(KeyWindow, err)
	}
	rampUp, err := cast.ToIntE(v.Get(KeyRampUp))
	if err != nil {
		return Config{}, invalid(KeyRampUp, err)
	}
	values, err := ParseValues(v.Get(KeyValues))
	if err != nil {
		return Config{}, invalid(KeyValues, err)
	}

	return Config{
		Generator:  v.GetString(KeyGenerator),
		Length:     length,
		Seed:       seed,
		Values:     values,
		Window:     size,
		RampUp:     rampUp,
		Convention: v.GetString(KeyConvention),
		LogLevel:   v.GetString(KeyLogLevel),
	}, nil
}

// ParseValues converts a raw config value into a float series. It accepts
// nil, a string of numbers separated by commas and/or whitespace, or a list
// whose elements cast to float64.
func ParseValues(raw interface{}) ([]float64, error) {
	var items []interface{}
	switch r := raw.(type) {
	case nil:
		return nil, nil
	case []float64:
		return append([]float64(nil), r...), nil
	case string:
		fields := strings.FieldsFunc(r, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == '\n'
		})
		for _, f := range fields {
			items = append(items, f)
		}
	default:
		var err error
		if items, err = cast.ToSliceE(raw); err != nil {
			return nil, err
		}
	}

	out := make([]float64, 0, len(items))
	for i, it := range items {
		f, err := cast.ToFloat64E(it)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

// IsSample reports whether the whole-series statistics use the n−1 convention.
// Call Validate first; unknown names report false.
func (c Config) IsSample() bool {
	isSample, _ := stats.ParseConvention(c.Convention)
	return isSample
}

// Validate checks every field and wraps ErrInvalidConfig with the offending key.
func (c Config) Validate() error {
	if len(c.Values) == 0 {
		if c.Length < builder.MinSeriesLen {
			return invalid(KeyLength, fmt.Errorf("must be >= %d, got %d", builder.MinSeriesLen, c.Length))
		}
		if !knownGenerator(c.Generator) {
			return invalid(KeyGenerator, fmt.Errorf("%q, want one of %s", c.Generator, strings.Join(builder.Generators, ", ")))
		}
	}
	if c.Window < 1 {
		return invalid(KeyWindow, fmt.Errorf("must be >= 1, got %d", c.Window))
	}
	if c.RampUp < 0 {
		return invalid(KeyRampUp, fmt.Errorf("must be >= 0, got %d", c.RampUp))
	}
	if _, err := stats.ParseConvention(c.Convention); err != nil {
		return invalid(KeyConvention, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return invalid(KeyLogLevel, err)
	}

	return nil
}

func knownGenerator(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, g := range builder.Generators {
		if g == name {
			return true
		}
	}
	return false
}

func invalid(key string, err error) error {
	return fmt.Errorf("%s: %v: %w", key, err, ErrInvalidConfig)
}
