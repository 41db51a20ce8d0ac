package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// EnvConfigPath overrides the location of the global config file.
const EnvConfigPath = "FILEBATCH_CONFIG"

// FileConfig describes one file of a template.
type FileConfig struct {
	Suffix         string   `toml:"suffix" json:"suffix" yaml:"suffix"`
	Content        []string `toml:"content" json:"content,omitempty" yaml:"content,omitempty"`
	AdditionalPath string   `toml:"additional_path" json:"additional_path,omitempty" yaml:"additional_path,omitempty"`
}

// TemplateConfig describes a named group of files.
type TemplateConfig struct {
	Label       string       `toml:"label" json:"label" yaml:"label"`
	Description string       `toml:"description" json:"description,omitempty" yaml:"description,omitempty"`
	Files       []FileConfig `toml:"files" json:"files" yaml:"files"`
}

// WorkspaceConfig is a root folder files can be created in.
type WorkspaceConfig struct {
	Name string `toml:"name" json:"name" yaml:"name"`
	Path string `toml:"path" json:"path" yaml:"path"`
}

// ThemeConfig selects the color theme of the interactive prompts.
type ThemeConfig struct {
	Name string `toml:"name" json:"name" yaml:"name"` // "default", "dracula", "nord", "none"
	Mode string `toml:"mode" json:"mode" yaml:"mode"` // "auto", "light", "dark"
}

// HookConfig is a shell command run after files are created.
// On lists the template labels it runs for ("all" for every template);
// a hook without On only runs when asked for with --hook.
type HookConfig struct {
	Command     string   `toml:"command" json:"command" yaml:"command"`
	Description string   `toml:"description" json:"description,omitempty" yaml:"description,omitempty"`
	On          []string `toml:"on" json:"on,omitempty" yaml:"on,omitempty"`
}

// Config holds the filebatch configuration
type Config struct {
	Templates  []TemplateConfig      `toml:"templates" json:"templates" yaml:"templates"`
	Workspaces []WorkspaceConfig     `toml:"workspaces" json:"workspaces" yaml:"workspaces"`
	Theme      ThemeConfig           `toml:"theme" json:"theme" yaml:"theme"`
	Hooks      map[string]HookConfig `toml:"hooks" json:"hooks,omitempty" yaml:"hooks,omitempty"`
	Overwrite  bool                  `toml:"overwrite" json:"overwrite" yaml:"overwrite"` // replace existing files instead of failing
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Theme: ThemeConfig{Name: "default", Mode: "auto"},
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalid, fieldName)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%w: %s must be absolute or start with ~, got: %q", ErrInvalid, fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the location of the global config file.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "filebatch", "config.toml"), nil
}

// Load reads the global config file.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is unreadable or invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config file at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validateTemplates(cfg.Templates, path); err != nil {
		return Default(), err
	}
	if err := validateTheme(cfg.Theme); err != nil {
		return Default(), err
	}
	if err := validateHooks(cfg.Hooks, path); err != nil {
		return Default(), err
	}

	for i := range cfg.Workspaces {
		ws := &cfg.Workspaces[i]
		field := fmt.Sprintf("workspaces[%d].path", i)
		if err := ValidatePath(ws.Path, field); err != nil {
			return Default(), err
		}
		expanded, err := expandPath(ws.Path)
		if err != nil {
			return Default(), fmt.Errorf("expand %s: %w", field, err)
		}
		ws.Path = filepath.Clean(expanded)
		if ws.Name == "" {
			ws.Name = filepath.Base(ws.Path)
		}
	}

	if cfg.Theme.Name == "" {
		cfg.Theme.Name = "default"
	}
	if cfg.Theme.Mode == "" {
		cfg.Theme.Mode = "auto"
	}

	return cfg, nil
}

// defaultConfig is the template for filebatch config init
const defaultConfig = `# filebatch configuration
# Location: ~/.config/filebatch/config.toml (override with FILEBATCH_CONFIG)

# Replace files that already exist instead of failing
# overwrite = false

# Templates offered by "filebatch create". Every file is created as
# {prefix}{suffix} inside the destination folder.
#
# [[templates]]
# label = "React component"
# description = "Component, styles and test"
#
# [[templates.files]]
# suffix = ".tsx"
# content = ["export {};"]
#
# [[templates.files]]
# suffix = ".module.css"
#
# [[templates.files]]
# suffix = ".test.tsx"
# additional_path = "__tests__"

# Commands run after files are created. Placeholders are shell-quoted:
# {dir}, {files}, {prefix}, {template}, {workspace}, {workspace-name}
# "on" lists template labels, or "all". Hooks without "on" only run with
# --hook=<name>.
#
# [hooks.prettier]
# command = "npx prettier --write {files}"
# description = "Format new files"
# on = ["React component"]

# Workspaces to choose from. Without any, the current directory is used.
#
# [[workspaces]]
# name = "web"
# path = "~/code/web"

# Prompt colors
# [theme]
# name = "default"  # default, dracula, nord, none
# mode = "auto"     # auto, light, dark
`

// DefaultConfig returns the default global configuration file content.
func DefaultConfig() string {
	return defaultConfig
}
