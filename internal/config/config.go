package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working and XDG config directories.
const FileName = ".routecmp.yaml"

// Constants for default values.
const (
	DefaultFormat = "auto"
	DefaultTheme  = "default"
)

// AppConfig represents the contents of .routecmp.yaml. Pointer fields
// distinguish "unset" from the zero value.
type AppConfig struct {
	Format        string `yaml:"format,omitempty"`
	Theme         string `yaml:"theme,omitempty"`
	Width         int    `yaml:"width,omitempty"`
	WarnUnmatched *bool  `yaml:"warn_unmatched,omitempty"`
	Debug         bool   `yaml:"debug"`
}

// LoadConfig reads the config file at path, or the discovered config file
// when path is empty. A missing discovered file yields an empty config; a
// missing explicit file is an error. The returned string is the path that
// was read, empty if none.
func LoadConfig(path string) (*AppConfig, string, error) {
	explicit := path != ""
	if !explicit {
		path = getConfigPath()
		if path == "" {
			return &AppConfig{}, "", nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &AppConfig{}, "", nil
		}
		return nil, "", fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, path, nil
}

// getConfigPath tries to find the config file.
// It checks local directory first, then XDG UserConfigDir (if valid).
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config dir is not suitable for XDG path construction.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "routecmp", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
