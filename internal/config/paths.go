package config

import (
	"os"
	"path/filepath"
)

const appDir = "initiative-tracker"

// DataDir returns the directory for the tracker's log file.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/initiative-tracker,
// defaulting to ~/.local/share/initiative-tracker.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appDir), nil
}

// LogPath resolves where log output goes, creating the data dir if the
// default location is used.
func (c Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "tracker.log"), nil
}
