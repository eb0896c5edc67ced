// Package config loads the optional umx.yml defaults file. Flags
// always win over file values; the file only fills gaps.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename looked up in the working directory.
const DefaultFile = "umx.yml"

// Config holds run defaults from umx.yml.
type Config struct {
	OutputRoot      string `yaml:"output_root,omitempty"`
	MaxInputAge     string `yaml:"max_input_age,omitempty"`    // Go duration, e.g. "24h"
	TraditionalDocs string `yaml:"traditional_docs,omitempty"` // comma list over prd,architecture,api,database
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOptional loads path when it exists and returns an empty config
// when it does not.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(path)
}

// Validate checks the field formats.
func (c *Config) Validate() error {
	if c.MaxInputAge != "" {
		if _, err := time.ParseDuration(c.MaxInputAge); err != nil {
			return fmt.Errorf("invalid max_input_age %q: use a Go duration like 24h or 30m", c.MaxInputAge)
		}
	}
	return nil
}

// MaxInputAgeDuration returns the parsed threshold, or zero when unset.
// Validate has already checked the format.
func (c *Config) MaxInputAgeDuration() time.Duration {
	if c.MaxInputAge == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.MaxInputAge)
	return d
}
