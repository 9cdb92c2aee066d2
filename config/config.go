// Package config loads the process-wide ServerConfig via viper, in the
// idiom of firestige-Otus's internal/config package: a mapstructure-tagged
// struct populated from a YAML file plus environment and flag overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig is the top-level static configuration for one server
// process.
type ServerConfig struct {
	ListenAddr         string  `mapstructure:"listen_addr"`
	MaxPlayers         int     `mapstructure:"max_players"`
	ViewDistance       int     `mapstructure:"view_distance"`
	SimulationDistance int     `mapstructure:"simulation_distance"`
	DimensionHeight    int     `mapstructure:"dimension_height"`
	RateLimit          float64 `mapstructure:"rate_limit"`
	RateBurst          int     `mapstructure:"rate_burst"`
	LogLevel           string  `mapstructure:"log_level"`
}

// Defaults returns a ServerConfig with this core's built-in defaults, used
// to seed viper before any file/env/flag layer is applied.
func Defaults() ServerConfig {
	return ServerConfig{
		ListenAddr:         "0.0.0.0:25565",
		MaxPlayers:         20,
		ViewDistance:       10,
		SimulationDistance: 10,
		DimensionHeight:    256,
		RateLimit:          50,
		RateBurst:          100,
		LogLevel:           "info",
	}
}

// Load reads configFile (when non-empty; a named file that cannot be read
// is an error) and environment variables prefixed MCSERVER_, layering them
// over Defaults(). v is an already-constructed
// viper instance so callers (cmd) can bind CLI flags into the same
// instance before calling Load, giving flags the highest precedence.
func Load(v *viper.Viper, configFile string) (ServerConfig, error) {
	defaults := Defaults()
	v.SetDefault("listen_addr", defaults.ListenAddr)
	v.SetDefault("max_players", defaults.MaxPlayers)
	v.SetDefault("view_distance", defaults.ViewDistance)
	v.SetDefault("simulation_distance", defaults.SimulationDistance)
	v.SetDefault("dimension_height", defaults.DimensionHeight)
	v.SetDefault("rate_limit", defaults.RateLimit)
	v.SetDefault("rate_burst", defaults.RateBurst)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("MCSERVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return ServerConfig{}, fmt.Errorf("config: failed to read %s: %w", configFile, err)
			}
		}
	}

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	return cfg, nil
}
