package main

import (
	"fmt"
	"os"

	"github.com/alexshd/lewis"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk configuration. Flags override every field.
type fileConfig struct {
	Base     int64  `yaml:"base"`
	Workers  int    `yaml:"workers"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

func defaultFileConfig() fileConfig {
	lib := lewis.DefaultConfig()
	return fileConfig{
		Base:     lib.Base,
		Workers:  lib.Workers,
		Format:   formatTable,
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. An empty path or a missing
// file yields the defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return fileConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("%w: failed to parse config: %v", lewis.ErrInvalidConfig, err)
	}

	return cfg, nil
}
