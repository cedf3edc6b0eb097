package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// decoder selection and its key-value options
type Decoder struct {
	Name    string            `toml:"name"`
	Options map[string]string `toml:"options"`
}

// runtime configuration for an extraction run
type Config struct {
	Decoder Decoder `toml:"decoder"`
}

// Default returns the built-in configuration: the SubRip text decoder
// with no options.
func Default() *Config {
	return &Config{
		Decoder: Decoder{
			Name:    "srt",
			Options: map[string]string{},
		},
	}
}

// Load reads a TOML config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Decoder.Options == nil {
		cfg.Decoder.Options = map[string]string{}
	}
	return cfg, nil
}

// Validate rejects configurations that cannot start a run. Option
// values are checked later against the decoder that consumes them.
func (c *Config) Validate() error {
	if c.Decoder.Name == "" {
		return fmt.Errorf("decoder name must not be empty")
	}
	for k := range c.Decoder.Options {
		if k == "" {
			return fmt.Errorf("decoder option with empty key")
		}
	}
	return nil
}
