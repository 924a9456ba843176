package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	botkeepererrors "github.com/botkeeper/botkeeper/pkg/errors"
)

const (
	appDirName     = "botkeeper"
	configFileName = "config.yaml"
)

// DefaultPath returns the per-user location of the settings file.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName, configFileName), nil
}

// Load reads the configuration at path, creating it with defaults when it
// does not exist yet. Missing fields are backfilled and the repaired file is
// written back, so a partially hand-edited file keeps working.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(cfg, path); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, botkeepererrors.NewParseError(path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, botkeepererrors.NewParseError(path, err)
	}

	if cfg.applyDefaults() {
		if err := Save(&cfg, path); err != nil {
			return nil, err
		}
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if cfg == nil {
		return botkeepererrors.NewValidationError("config", "configuration is nil", nil)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
