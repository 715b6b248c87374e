// Package editorconfig persists editor preferences across runs.
// In-scene data is handled by the serializer; this is only the
// authoring shell's own settings.
package editorconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PrefsPath is the preferences file, relative to the working directory.
const PrefsPath = "config/editor.yaml"

// Prefs holds editor-only settings.
type Prefs struct {
	MaxUndo         int     `yaml:"max_undo"`
	AutosaveSeconds int     `yaml:"autosave_seconds"`
	DefaultScene    string  `yaml:"default_scene"`
	CameraSpeed     float32 `yaml:"camera_speed"`
}

// Default returns the stock preferences.
func Default() Prefs {
	return Prefs{
		MaxUndo:         100,
		AutosaveSeconds: 120,
		DefaultScene:    "scenes/untitled.json",
		CameraSpeed:     10,
	}
}

// Load reads preferences from PrefsPath. A missing or unparsable file
// yields the defaults without error and without creating a file.
func Load() Prefs {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return Default()
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default()
	}
	if p.MaxUndo < 1 {
		p.MaxUndo = Default().MaxUndo
	}
	return p
}

// Save writes preferences to PrefsPath, creating the directory if
// needed.
func Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(PrefsPath), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
