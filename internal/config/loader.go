package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-loess/stats/loess"
)

// configName is the config file name without extension.
const configName = ".loess"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix, e.g. LOESS_SMOOTHER_BANDWIDTH.
const envPrefix = "LOESS"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func LoadConfig(configPath string) (*Config, error) {
	return Load(New(), configPath)
}

// Load reads the config file into v, which may already carry bound flags,
// and decodes the result.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
	}

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	return Decode(v)
}

// New returns a viper instance with defaults and environment binding
// applied. Callers may bind command-line flags to it before Decode.
func New() *viper.Viper {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	return v
}

// Decode unmarshals and validates the settings held by v.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("smoother.accuracy", loess.DefaultAccuracy)
	v.SetDefault("smoother.bandwidth", loess.DefaultBandwidth)
	v.SetDefault("smoother.robustness_factor", loess.DefaultRobustnessFactor)
	v.SetDefault("smoother.sort", false)

	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("output.precision", DefaultPrecision)

	v.SetDefault("plot.path", "")
	v.SetDefault("plot.title", DefaultPlotTitle)
}
