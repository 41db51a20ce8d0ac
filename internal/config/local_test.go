package config

import (
	"path/filepath"
	"testing"
)

func TestLoadLocal(t *testing.T) {
	t.Parallel()

	t.Run("no file", func(t *testing.T) {
		t.Parallel()
		local, err := LoadLocal(t.TempDir())
		if err != nil || local != nil {
			t.Fatalf("LoadLocal() = %v, %v; want nil, nil", local, err)
		}
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, LocalConfigFileName), `
overwrite = false

[[templates]]
label = "Go package"

[[templates.files]]
suffix = ".go"
`)
		local, err := LoadLocal(dir)
		if err != nil {
			t.Fatalf("LoadLocal() error = %v", err)
		}
		if local.Overwrite == nil || *local.Overwrite {
			t.Errorf("Overwrite = %v, want explicit false", local.Overwrite)
		}
		if len(local.Templates) != 1 || local.Templates[0].Files[0].Suffix != ".go" {
			t.Errorf("templates = %+v", local.Templates)
		}
	})

	t.Run("yaml fallback", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, LocalYAMLConfigFileName), `
templates:
  - label: Story
    files:
      - suffix: .stories.tsx
        additional_path: stories
        content:
          - "export default {};"
hooks:
  stories:
    command: storybook build
    on: [Story]
`)
		local, err := LoadLocal(dir)
		if err != nil {
			t.Fatalf("LoadLocal() error = %v", err)
		}
		if h := local.Hooks["stories"]; h.Command != "storybook build" || len(h.On) != 1 || h.On[0] != "Story" {
			t.Errorf("hooks = %+v", local.Hooks)
		}
		if local.Overwrite != nil {
			t.Errorf("Overwrite = %v, want nil", *local.Overwrite)
		}
		f := local.Templates[0].Files[0]
		if f.Suffix != ".stories.tsx" || f.AdditionalPath != "stories" || len(f.Content) != 1 {
			t.Errorf("file = %+v", f)
		}
	})

	t.Run("toml wins over yaml", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, LocalConfigFileName), "[[templates]]\nlabel = \"From TOML\"\n")
		writeFile(t, filepath.Join(dir, LocalYAMLConfigFileName), "templates:\n  - label: From YAML\n")
		local, err := LoadLocal(dir)
		if err != nil {
			t.Fatalf("LoadLocal() error = %v", err)
		}
		if local.Templates[0].Label != "From TOML" {
			t.Errorf("label = %q, want From TOML", local.Templates[0].Label)
		}
	})

	t.Run("invalid template", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, LocalYAMLConfigFileName), "templates:\n  - label: Custom\n")
		if _, err := LoadLocal(dir); err == nil {
			t.Fatal("LoadLocal() error = nil, want reserved label error")
		}
	})
}
