package config

import (
	"os"
	"path/filepath"
)

// AppName identifies the application; it keys the persisted window record
// and names the per-user config and cache directories.
const AppName = "Broz"

// Dir returns the per-user config directory, e.g. ~/.config/Broz.
func Dir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.UserHomeDir()
	}
	return filepath.Join(dir, AppName)
}

// SettingsPath returns the path to settings.yaml.
func SettingsPath() string {
	return filepath.Join(Dir(), "settings.yaml")
}

// StatePath returns the path to the persisted window geometry.
func StatePath() string {
	return filepath.Join(Dir(), "window-state.json")
}

// LogPath returns the log file location under the user cache directory.
func LogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppName, "broz.log")
}
