// SPDX-License-Identifier: MIT

// Package config holds crimenet settings backed by viper: defaults, an
// optional config file, CRIMENET_* environment overrides and explicit Set
// calls, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/crimenet/coverage"
	"github.com/katalvlaran/crimenet/dataset"
	"github.com/katalvlaran/crimenet/rwr"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CRIMENET_RWR_TOLERANCE.
const EnvPrefix = "CRIMENET"

// Keys.
const (
	KeyInputPath          = "input.path"
	KeyCommentPrefix      = "input.comment_prefix"
	KeySkipMalformed      = "input.skip_malformed"
	KeyRestartProbability = "rwr.restart_probability"
	KeyTolerance          = "rwr.tolerance"
	KeyMaxIterations      = "rwr.max_iterations"
	KeyTopK               = "rwr.top_k"
	KeyCoverageThreshold  = "coverage.threshold"
	KeyLogLevel           = "logging.level"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config manages crimenet configuration using viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment binding.
func New() *Config {
	v := viper.New()

	v.SetDefault(KeyInputPath, "")
	v.SetDefault(KeyCommentPrefix, dataset.DefaultCommentPrefix)
	v.SetDefault(KeySkipMalformed, false)

	v.SetDefault(KeyRestartProbability, rwr.DefaultRestartProbability)
	v.SetDefault(KeyTolerance, rwr.DefaultTolerance)
	v.SetDefault(KeyMaxIterations, rwr.DefaultMaxIterations)
	v.SetDefault(KeyTopK, 10)

	v.SetDefault(KeyCoverageThreshold, coverage.DefaultThreshold)

	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges settings from a YAML, JSON or TOML file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Set overrides a key, taking precedence over file and environment.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) InputPath() string     { return c.v.GetString(KeyInputPath) }
func (c *Config) CommentPrefix() string { return c.v.GetString(KeyCommentPrefix) }
func (c *Config) SkipMalformed() bool   { return c.v.GetBool(KeySkipMalformed) }

func (c *Config) RestartProbability() float64 { return c.v.GetFloat64(KeyRestartProbability) }
func (c *Config) Tolerance() float64          { return c.v.GetFloat64(KeyTolerance) }
func (c *Config) MaxIterations() int          { return c.v.GetInt(KeyMaxIterations) }
func (c *Config) TopK() int                   { return c.v.GetInt(KeyTopK) }

func (c *Config) CoverageThreshold() float64 { return c.v.GetFloat64(KeyCoverageThreshold) }

func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// Validate checks ranges that the algorithm packages would otherwise
// reject later.
func (c *Config) Validate() error {
	if a := c.RestartProbability(); a < 0 || a > 1 {
		return fmt.Errorf("%w: %s must be in [0,1] (%v)", ErrInvalid, KeyRestartProbability, a)
	}
	if e := c.Tolerance(); e <= 0 {
		return fmt.Errorf("%w: %s must be positive (%v)", ErrInvalid, KeyTolerance, e)
	}
	if n := c.MaxIterations(); n < 0 {
		return fmt.Errorf("%w: %s cannot be negative (%d)", ErrInvalid, KeyMaxIterations, n)
	}
	if k := c.TopK(); k < 0 {
		return fmt.Errorf("%w: %s cannot be negative (%d)", ErrInvalid, KeyTopK, k)
	}
	if f := c.CoverageThreshold(); f <= 0 || f > 1 {
		return fmt.Errorf("%w: %s must be in (0,1] (%v)", ErrInvalid, KeyCoverageThreshold, f)
	}
	if c.CommentPrefix() == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalid, KeyCommentPrefix)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}

	return nil
}

// DatasetOptions translates the input.* keys.
func (c *Config) DatasetOptions(l zerolog.Logger) []dataset.Option {
	return []dataset.Option{
		dataset.WithCommentPrefix(c.CommentPrefix()),
		dataset.WithSkipMalformed(c.SkipMalformed()),
		dataset.WithLogger(l),
	}
}

// RWROptions translates the rwr.* keys.
func (c *Config) RWROptions(l zerolog.Logger) []rwr.Option {
	return []rwr.Option{
		rwr.WithRestartProbability(c.RestartProbability()),
		rwr.WithTolerance(c.Tolerance()),
		rwr.WithMaxIterations(c.MaxIterations()),
		rwr.WithLogger(l),
	}
}

// CoverageOptions translates the coverage.* keys.
func (c *Config) CoverageOptions(l zerolog.Logger) []coverage.Option {
	return []coverage.Option{
		coverage.WithThreshold(c.CoverageThreshold()),
		coverage.WithLogger(l),
	}
}

// CreateLogger builds a console logger on w (stderr when nil) at the
// configured level; an unknown level falls back to info.
func (c *Config) CreateLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "crimenet").Logger()
}
