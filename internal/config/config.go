// Package config holds the process-wide configuration, populated once
// at startup from the config file, environment and flags.
package config

// Version defines the gnsstime version, set at build time.
var Version string

// Config defines the configuration structure.
type Config struct {
	General struct {
		LogLevel int `mapstructure:"log_level"`
	} `mapstructure:"general"`

	LeapSeconds struct {
		// File overrides the leap second table location. Empty means
		// use the default resolution (environment variable, user
		// config directory, bundled copy).
		File string `mapstructure:"file"`

		// UpdateURL is where the update command fetches a fresh
		// GPSUTC.BSW from.
		UpdateURL string `mapstructure:"update_url"`
	} `mapstructure:"leap_seconds"`

	Output struct {
		JSON bool `mapstructure:"json"`
	} `mapstructure:"output"`
}

// C holds the global configuration.
var C Config
