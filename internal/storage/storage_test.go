package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadJSON_Roundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")

	type Data struct {
		Folder string `json:"folder"`
		Count  int    `json:"count"`
	}

	original := Data{Folder: "src/components", Count: 3}
	if err := SaveJSON(path, original); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}

	var loaded Data
	if err := LoadJSON(path, &loaded); err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if loaded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", loaded, original)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind (stat err = %v)", err)
	}
}

func TestLoadJSON_NotFound(t *testing.T) {
	t.Parallel()

	var data map[string]any
	err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), &data)
	if !os.IsNotExist(err) {
		t.Errorf("expected os.IsNotExist error, got %v", err)
	}
}

func TestLoadJSON_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	var data map[string]any
	if err := LoadJSON(path, &data); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSaveJSON_CreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "state.json")
	if err := SaveJSON(path, map[string]string{"key": "value"}); err != nil {
		t.Fatalf("SaveJSON failed to create directories: %v", err)
	}

	var loaded map[string]string
	if err := LoadJSON(path, &loaded); err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if loaded["key"] != "value" {
		t.Errorf("expected key=value, got key=%s", loaded["key"])
	}
}

func TestStateDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "state")
		t.Setenv(EnvStateDir, dir)

		got, err := StateDir()
		if err != nil {
			t.Fatalf("StateDir() error = %v", err)
		}
		if got != dir {
			t.Errorf("StateDir() = %q, want %q", got, dir)
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("StateDir() did not create %s", dir)
		}
	})

	t.Run("xdg state home", func(t *testing.T) {
		base := t.TempDir()
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", base)

		got, err := StateDir()
		if err != nil {
			t.Fatalf("StateDir() error = %v", err)
		}
		if want := filepath.Join(base, "filebatch"); got != want {
			t.Errorf("StateDir() = %q, want %q", got, want)
		}
	})

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "")
		t.Setenv("HOME", home)

		got, err := StateDir()
		if err != nil {
			t.Fatalf("StateDir() error = %v", err)
		}
		if want := filepath.Join(home, ".local", "state", "filebatch"); got != want {
			t.Errorf("StateDir() = %q, want %q", got, want)
		}
	})
}
