// Package config loads and saves the application settings file. Settings
// are user preferences for the add-timer form and language selection, kept
// separate from the timer list itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Settings are the user-tunable application preferences.
type Settings struct {
	DefaultMinutes int    `yaml:"default_minutes"`
	DefaultAlarm   string `yaml:"default_alarm"`
	Language       string `yaml:"language"`
}

// DefaultSettings returns the settings used on first launch.
func DefaultSettings() Settings {
	return Settings{
		DefaultMinutes: 25,
		DefaultAlarm:   "bell",
	}
}

// LoadSettings reads user preferences from YAML. If the config file does
// not exist, default settings are returned.
func LoadSettings(appName string) (Settings, error) {
	settings := DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	if err := yaml.Unmarshal(rawData, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings yaml: %w", err)
	}
	if settings.DefaultMinutes <= 0 {
		settings.DefaultMinutes = DefaultSettings().DefaultMinutes
	}
	if settings.DefaultAlarm == "" {
		settings.DefaultAlarm = DefaultSettings().DefaultAlarm
	}
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// userConfigDir is stubbed in tests.
var userConfigDir = os.UserConfigDir

func resolveConfigPath(appName string) (string, error) {
	baseDir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(baseDir, appName, settingsFileName), nil
}
