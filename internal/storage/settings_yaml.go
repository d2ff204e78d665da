// Package storage persists user preferences. Only preferences live on disk;
// session state is transient and resets with the process.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bigmistqke/in-out/internal/config"
)

const settingsFileName = "settings.yaml"

// Settings are the user-adjustable startup preferences.
type Settings struct {
	InSeconds          float64
	OutSeconds         float64
	BreathesPerSession int
	Renderer           string // "bar" or "shader"
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		InSeconds:          config.DefaultInSeconds,
		OutSeconds:         config.DefaultOutSeconds,
		BreathesPerSession: config.BreathesPerSession,
		Renderer:           "bar",
	}
}

type yamlSettings struct {
	InSeconds          float64 `yaml:"in_seconds"`
	OutSeconds         float64 `yaml:"out_seconds"`
	BreathesPerSession int     `yaml:"breathes_per_session"`
	Renderer           string  `yaml:"renderer"`
}

// DefaultPath resolves the per-user settings file location.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads preferences from the YAML file at path. A missing file
// yields the defaults; malformed or out-of-range fields fall back per field.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes preferences to the YAML file at path, creating parent
// directories as needed.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		InSeconds:          settings.InSeconds,
		OutSeconds:         settings.OutSeconds,
		BreathesPerSession: settings.BreathesPerSession,
		Renderer:           settings.Renderer,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	if fileData.InSeconds > config.DurationMin && fileData.InSeconds < config.DurationMax {
		settings.InSeconds = fileData.InSeconds
	}
	if fileData.OutSeconds > config.DurationMin && fileData.OutSeconds < config.DurationMax {
		settings.OutSeconds = fileData.OutSeconds
	}
	if fileData.BreathesPerSession > 0 {
		settings.BreathesPerSession = fileData.BreathesPerSession
	}
	if fileData.Renderer == "bar" || fileData.Renderer == "shader" {
		settings.Renderer = fileData.Renderer
	}
}
