// Package config provides configuration management for the mddbb CLI
// harness: a viper-backed, mapstructure-tagged Config-and-defaults
// pattern. The core solver package never touches viper — only this
// CLI-facing layer does.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the mddbb CLI.
type Config struct {
	Solve SolveConfig `mapstructure:"solve"`
	Log   LogConfig   `mapstructure:"log"`
}

// SolveConfig holds solver-run configuration.
type SolveConfig struct {
	// Width fixes the MDD width bound; 0 selects adaptive width.
	Width int `mapstructure:"width"`

	// TimeLimitSeconds bounds wall-clock search time; 0 means unbounded.
	TimeLimitSeconds int `mapstructure:"time_limit_seconds"`

	// Problem selects the built-in problem fixture to run: "sum", "k3", or
	// "disconnected" (see the examples package).
	Problem string `mapstructure:"problem"`

	// N is the variable count for the "sum" problem.
	N int `mapstructure:"n"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath (if non-empty) or from the
// standard search locations, falling back to defaults when no file is
// found.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("mddbb")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file: proceed with defaults and flags/env overrides.
		} else if os.IsNotExist(err) {
			fmt.Printf("config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("solve.width", 0)
	v.SetDefault("solve.time_limit_seconds", 0)
	v.SetDefault("solve.problem", "sum")
	v.SetDefault("solve.n", 3)

	v.SetDefault("log.level", "info")
}
