// Package storage provides atomic file operations for JSON state files.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EnvStateDir overrides the directory state files are kept in.
const EnvStateDir = "FILEBATCH_STATE_DIR"

// StateDir returns the filebatch state directory, creating it if needed.
// $FILEBATCH_STATE_DIR wins, then $XDG_STATE_HOME/filebatch, then
// ~/.local/state/filebatch.
func StateDir() (string, error) {
	dir := os.Getenv(EnvStateDir)
	if dir == "" {
		base := os.Getenv("XDG_STATE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, ".local", "state")
		}
		dir = filepath.Join(base, "filebatch")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return dir, nil
}

// SaveJSON atomically writes data as JSON to the specified path.
// It ensures the parent directory exists, writes to a temp file,
// then renames to the final path.
func SaveJSON(path string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tempPath := path + ".tmp"

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, jsonData, 0o600); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}

// LoadJSON reads JSON from the specified path into dest.
// Returns os.ErrNotExist if file doesn't exist (caller should handle).
func LoadJSON(path string, dest any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}
