package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path comes from CONFIG_PATH (fallback ./config.yaml).
// A missing fallback file is not an error: ENV and defaults are used.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		return LoadFile(path)
	}

	if _, err := os.Stat(defaultConfigPath); err == nil {
		return LoadFile(defaultConfigPath)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return finalize(&cfg)
}

// LoadFile reads configuration from the given YAML file, then ENV.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return finalize(&cfg)
}

func finalize(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
