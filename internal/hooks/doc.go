// Package hooks runs shell commands after files are created.
//
// Hooks are defined in the global or local config and pick the templates
// they run for:
//
//	[hooks.prettier]
//	command = "npx prettier --write {files}"
//	on = ["React component"]  # or ["all"]
//
//	[hooks.open]
//	command = "code {dir}"
//	# no "on" - only runs via --hook=open
//
// --no-hook skips all hooks.
//
// # Placeholder Substitution
//
// All values are shell-quoted:
//
//   - {dir}: Absolute destination folder
//   - {files}: Created files, absolute, space separated
//   - {prefix}: File name prefix
//   - {template}: Template label
//   - {workspace}: Workspace root
//   - {workspace-name}: Workspace name
//
// Custom variables via --arg key=value, or from a dotenv file given with
// --env-file (--arg wins):
//
//   - {key}: Value of the variable
//   - {key:raw}: Value without quoting
//   - {key:-default}: Value with fallback if not provided
//
// Hooks run in the destination folder, attached to the terminal.
package hooks
