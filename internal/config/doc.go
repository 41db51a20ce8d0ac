// Package config handles loading and validation of filebatch configuration.
//
// The global configuration is read from ~/.config/filebatch/config.toml.
// The FILEBATCH_CONFIG environment variable points to a different file.
//
// # Templates
//
// Templates are defined as [[templates]] tables. Every file of a template
// is created as {prefix}{suffix}, optionally below an additional path and
// with initial content lines:
//
//	[[templates]]
//	label = "React component"
//	description = "Component, styles and test"
//
//	[[templates.files]]
//	suffix = ".tsx"
//	content = ["export {};"]
//
//	[[templates.files]]
//	suffix = ".test.tsx"
//	additional_path = "__tests__"
//
// The label "Custom" is reserved for the built-in template that asks for
// suffixes interactively.
//
// # Workspaces
//
// [[workspaces]] tables list the roots files can be created in. When none
// are configured the current directory is the only workspace.
//
// # Local Configuration
//
// A workspace may carry a .filebatch.toml (or .filebatch.yaml) at its root.
// Local templates are added to the global ones; a local template replaces a
// global template with the same label.
//
// # Path Validation
//
// Workspace paths must be absolute or start with ~ to avoid confusion
// about the working directory.
package config
