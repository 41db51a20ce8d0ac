// Package doctor checks the filebatch setup for problems and optionally
// repairs them.
//
// Three groups of checks run:
//
//   - [CategoryConfig]: the global config file parses and validates.
//   - [CategoryWorkspace]: configured workspaces exist, are directories and
//     their local config files are valid.
//   - [CategoryHistory]: the recent destinations file is readable and its
//     entries point at folders that still exist.
//
// Config and workspace issues need manual repair. History issues carry a
// FixAction that [Run] applies when Options.Fix is set.
package doctor
