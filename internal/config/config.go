// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the stanpkg configuration.
// Loaded from ~/.stanpkg/config.yaml; environment variables take precedence.
type Config struct {
	// Author is written to the Author field of new manifests.
	// Env: STANPKG_AUTHOR
	Author string `yaml:"author,omitempty" mapstructure:"author"`

	// Maintainer is written to the Maintainer field, as "Name <email>".
	// Env: STANPKG_MAINTAINER
	Maintainer string `yaml:"maintainer,omitempty" mapstructure:"maintainer"`

	// License is written to the License field.
	// Env: STANPKG_LICENSE
	License string `yaml:"license,omitempty" mapstructure:"license"`

	// AutoConfig adds install-time configure scripts to new skeletons.
	// Env: STANPKG_AUTO_CONFIG
	AutoConfig bool `yaml:"autoConfig" mapstructure:"autoConfig"`

	// Log contains logging-related settings.
	Log LogConfig `yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns the config written by `stanpkg config init`.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Author:     "Your Name",
		Maintainer: "Your Name <you@example.com>",
		License:    "GPL (>= 3)",
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}
