// Package config loads command-line settings for the loess tool from
// defaults, an optional YAML file and LOESS_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-loess/stats/loess"
)

// Output formats.
const (
	FormatCSV   = "csv"
	FormatTable = "table"
)

// Defaults for settings not provided by the library.
const (
	DefaultFormat    = FormatCSV
	DefaultPrecision = -1
	DefaultPlotTitle = "LOESS fit"
)

var (
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("output format must be csv or table")
	// ErrInvalidPrecision is returned for a precision below -1.
	ErrInvalidPrecision = errors.New("output precision must be >= -1")
)

// Config is the top-level configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Smoother SmootherConfig `mapstructure:"smoother"`
	Output   OutputConfig   `mapstructure:"output"`
	Plot     PlotConfig     `mapstructure:"plot"`
}

// SmootherConfig mirrors the loess.Smoother options.
type SmootherConfig struct {
	Accuracy         float64 `mapstructure:"accuracy"`
	Bandwidth        float64 `mapstructure:"bandwidth"`
	RobustnessFactor int     `mapstructure:"robustness_factor"`
	Sort             bool    `mapstructure:"sort"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
}

// PlotConfig controls the optional HTML chart. An empty Path disables it.
type PlotConfig struct {
	Path  string `mapstructure:"path"`
	Title string `mapstructure:"title"`
}

// Options converts the smoother settings to loess options.
func (c *Config) Options() []loess.Option {
	return []loess.Option{
		loess.WithAccuracy(c.Smoother.Accuracy),
		loess.WithBandwidth(c.Smoother.Bandwidth),
		loess.WithRobustnessFactor(c.Smoother.RobustnessFactor),
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := loess.New(c.Options()...); err != nil {
		return err
	}

	switch c.Output.Format {
	case FormatCSV, FormatTable:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}

	if c.Output.Precision < -1 {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Output.Precision)
	}

	return nil
}
