package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./pixelforge.yaml",
		DefaultPath(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Pixelforge")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Pixelforge")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "pixelforge")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "pixelforge")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
// Palette colors from the file are added to the defaults, not substituted.
// Inherited colors that no longer fit a smaller palette size are dropped;
// colors the file names itself are kept so Validate can report them.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	var file struct {
		Palette struct {
			Colors map[int]string `yaml:"colors"`
		} `yaml:"palette"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	for idx := range cfg.Palette.Colors {
		if _, own := file.Palette.Colors[idx]; own {
			continue
		}
		if idx < 0 || idx >= cfg.Palette.Size {
			delete(cfg.Palette.Colors, idx)
		}
	}
	return nil
}
