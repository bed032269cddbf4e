package mdnotes

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the optional per-user configuration file. Every field has a
// sensible zero value; a missing file is not an error.
type Settings struct {
	// NotesDir overrides where notes are stored.
	NotesDir string `yaml:"notes_dir"`
	// Editor is used by `open` when the EDITOR environment variable is unset.
	Editor string `yaml:"editor"`
	// Recent is the default -r limit for `list` (0 means unlimited).
	Recent int `yaml:"recent"`
}

// SettingsPath returns the location of the settings file,
// <user config dir>/mdnotes/settings.yaml.
func SettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "mdnotes", "settings.yaml"), nil
}

// LoadSettings reads the settings file. A missing file yields zero
// Settings and no error; a malformed file is reported.
func LoadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}
	return loadSettingsFile(path)
}

func loadSettingsFile(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, err
	}
	return s, nil
}
