package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const lawnFile = "lawn.yaml"

// LoadLawn loads the lawn tuning.
// Search order: customPath -> ~/.lawn/configs/lawn.yaml -> ./configs/lawn.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial YAML only overrides
// the keys it names. A custom path that is unreadable or invalid is an error;
// the other locations are skipped silently.
func LoadLawn(customPath string) (LawnConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LawnConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseLawn(data)
		if err != nil {
			return LawnConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(lawnFile), filepath.Join("configs", lawnFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseLawn(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseLawn(defaultLawnYAML)
	if err != nil {
		return DefaultLawnConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseLawn(data []byte) (LawnConfig, error) {
	cfg := DefaultLawnConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LawnConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return LawnConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lawn", "configs", filename)
}
