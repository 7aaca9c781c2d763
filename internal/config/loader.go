package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads the server configuration from a YAML file and environment
// variables. Priority: ENV > YAML > env-default tags. The file path comes
// from CONFIG_PATH (fallback "./config.yaml"); a missing fallback file means
// ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	if err := ReadInto(&cfg, os.Getenv("CONFIG_PATH"), "./config.yaml"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// ReadInto fills dst with cleanenv from path, or from fallback when path is
// empty. An explicit path must exist; a missing fallback is skipped and only
// the environment is read.
func ReadInto(dst any, path, fallback string) error {
	explicit := path != ""
	if !explicit {
		path = fallback
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	} else if explicit {
		return fmt.Errorf("config: file %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(dst); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}
