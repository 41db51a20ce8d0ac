package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Local config file names, looked up in this order at a workspace root.
const (
	LocalConfigFileName     = ".filebatch.toml"
	LocalYAMLConfigFileName = ".filebatch.yaml"
)

// LocalConfig holds per-workspace overrides.
// A nil Overwrite means "not set" (inherit from global).
type LocalConfig struct {
	Templates []TemplateConfig      `toml:"templates" json:"templates" yaml:"templates"`
	Hooks     map[string]HookConfig `toml:"hooks" json:"hooks,omitempty" yaml:"hooks"`
	Overwrite *bool                 `toml:"overwrite" json:"overwrite,omitempty" yaml:"overwrite"`
}

// LoadLocal reads the local config of the workspace at dir.
// Returns nil (no error) if neither file exists.
// Returns an error only on read, parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	local, path, err := readLocal(dir)
	if err != nil || local == nil {
		return nil, err
	}

	if err := validateTemplates(local.Templates, path); err != nil {
		return nil, err
	}
	if err := validateHooks(local.Hooks, path); err != nil {
		return nil, err
	}

	return local, nil
}

func readLocal(dir string) (*LocalConfig, string, error) {
	tomlPath := filepath.Join(dir, LocalConfigFileName)
	data, err := os.ReadFile(tomlPath)
	if err == nil {
		var local LocalConfig
		if err := toml.Unmarshal(data, &local); err != nil {
			return nil, tomlPath, fmt.Errorf("failed to parse local config %s: %w", tomlPath, err)
		}
		return &local, tomlPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, tomlPath, fmt.Errorf("failed to read local config %s: %w", tomlPath, err)
	}

	yamlPath := filepath.Join(dir, LocalYAMLConfigFileName)
	data, err = os.ReadFile(yamlPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", nil
		}
		return nil, yamlPath, fmt.Errorf("failed to read local config %s: %w", yamlPath, err)
	}

	var local LocalConfig
	if err := yaml.Unmarshal(data, &local); err != nil {
		return nil, yamlPath, fmt.Errorf("failed to parse local config %s: %w", yamlPath, err)
	}
	return &local, yamlPath, nil
}

// defaultLocalConfig is the template for filebatch config init --local
const defaultLocalConfig = `# filebatch local config (per-workspace templates)
# Place this file at the root of a workspace.
# Templates here are added to the global ones; a template with the same
# label as a global one replaces it for this workspace.

# overwrite = false

# [[templates]]
# label = "Go package"
# description = "Source file and test"
#
# [[templates.files]]
# suffix = ".go"
#
# [[templates.files]]
# suffix = "_test.go"

# Hooks here replace global hooks with the same name.
#
# [hooks.gofmt]
# command = "gofmt -w {files}"
# on = ["Go package"]
`

// DefaultLocalConfig returns the default local configuration template content.
func DefaultLocalConfig() string {
	return defaultLocalConfig
}
