// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "OBSDEMO"

type config struct {
	// ID labels the observer in the log output.
	ID string

	LogLevel  zerolog.Level
	LogFormat string

	// Pace is the number of values per second shown, 0 for no pacing.
	Pace float64

	// Value is emitted by the 'of' scenario.
	Value int

	// Series is emitted by the 'from' and 'map' scenarios.
	Series []int

	// Error is the message emitted by the 'throw' scenario.
	Error string
}

func registerFlags(flags *pflag.FlagSet) {
	flags.String("id", "IntObs", "label of the observer in the output")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.Float64("pace", 0, "values shown per second, 0 for no pacing")
	flags.Int("value", 1, "value emitted by the 'of' scenario")
	flags.String("series", "1,-2,3,-4,5,-6,7", "comma-separated values emitted by the 'from' and 'map' scenarios")
	flags.String("error", "An error occured!", "message emitted by the 'throw' scenario")
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		ID:        v.GetString("id"),
		LogFormat: v.GetString("log-format"),
		Pace:      v.GetFloat64("pace"),
		Value:     v.GetInt("value"),
		Error:     v.GetString("error"),
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("log-level")))
	if err != nil {
		return config{}, errors.Wrap(err, "invalid log level")
	}
	cfg.LogLevel = level

	switch cfg.LogFormat {
	case "console", "json":
	default:
		return config{}, errors.Errorf("invalid log format %q", cfg.LogFormat)
	}

	if cfg.Pace < 0 {
		return config{}, errors.Errorf("pace must not be negative, got %v", cfg.Pace)
	}

	cfg.Series, err = parseSeries(v.GetString("series"))
	if err != nil {
		return config{}, err
	}
	return cfg, nil
}

func parseSeries(s string) ([]int, error) {
	series := []int{}
	s = strings.TrimSpace(s)
	if s == "" {
		return series, nil
	}
	for _, field := range strings.Split(s, ",") {
		x, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid series %q", s)
		}
		series = append(series, x)
	}
	return series, nil
}

func (cfg config) logger(out io.Writer) zerolog.Logger {
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}
	return zerolog.New(out).Level(cfg.LogLevel)
}
