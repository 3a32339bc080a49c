package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load returns the built-in snake configuration.
// The embedded YAML is authoritative; the hardcoded defaults are used only
// if it fails to parse. The result is validated either way.
func Load() (SnakeConfig, error) {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		cfg = DefaultSnakeConfig() // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so omitted keys keep their
// default values. It does not validate.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse snake config: %w", err)
	}
	return cfg, nil
}
