// Package config provides user configuration management,
// including reading and writing the gitprompt configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig represents the user-level configuration stored at
// ~/.gitprompt/config.json. All fields are optional.
type UserConfig struct {
	Color   *string `json:"color,omitempty"`   // "auto", "always", or "never"
	BinDir  *string `json:"binDir,omitempty"`  // install destination override
	Profile *string `json:"profile,omitempty"` // profile file override
}

// ConfigPath returns the location of the config file under the given home directory
func ConfigPath(homeDir string) string {
	return filepath.Join(homeDir, ".gitprompt", "config.json")
}

// GetUserConfig reads the configuration, returning defaults when no file exists
func GetUserConfig(homeDir string) (*UserConfig, error) {
	data, err := os.ReadFile(ConfigPath(homeDir))
	if err != nil {
		// Config doesn't exist - return default
		return &UserConfig{}, nil
	}

	var config UserConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// Save writes the configuration back to disk, creating the directory if needed
func (c *UserConfig) Save(homeDir string) error {
	path := ConfigPath(homeDir)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetColor returns the configured color mode, or "auto" as default
func GetColor(homeDir string) (string, error) {
	config, err := GetUserConfig(homeDir)
	if err != nil {
		return "", err
	}
	if config.Color != nil && *config.Color != "" {
		return *config.Color, nil
	}
	return "auto", nil
}

// GetBinDir returns the configured install directory, or /usr/local/bin as default
func GetBinDir(homeDir string) (string, error) {
	config, err := GetUserConfig(homeDir)
	if err != nil {
		return "", err
	}
	if config.BinDir != nil && *config.BinDir != "" {
		return *config.BinDir, nil
	}
	return "/usr/local/bin", nil
}

// GetProfile returns the configured profile override, empty when unset
func GetProfile(homeDir string) (string, error) {
	config, err := GetUserConfig(homeDir)
	if err != nil {
		return "", err
	}
	if config.Profile != nil {
		return *config.Profile, nil
	}
	return "", nil
}

// SetValue sets a configuration key, validating known keys and values
func SetValue(homeDir string, key string, value string) error {
	config, err := GetUserConfig(homeDir)
	if err != nil {
		return err
	}

	switch key {
	case "color":
		if value != "auto" && value != "always" && value != "never" {
			return fmt.Errorf("invalid value %q for color (expected auto, always, or never)", value)
		}
		config.Color = &value
	case "binDir":
		config.BinDir = &value
	case "profile":
		config.Profile = &value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return config.Save(homeDir)
}
