// Package workspace resolves the root folders files are created in and
// suggests destination folders inside them.
package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/filebatch/internal/config"
)

// ErrOutsideWorkspace is returned for destinations that leave the
// workspace root.
var ErrOutsideWorkspace = errors.New("path is outside the workspace")

// Folder is a workspace root.
type Folder struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// RelativeTo returns the folder path relative to base, or the absolute
// path when it is not below base.
func (f Folder) RelativeTo(base string) string {
	rel, err := filepath.Rel(base, f.Path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return f.Path
	}
	return rel
}

// Resolve returns the configured workspaces followed by extra paths.
// Relative extra paths are resolved against cwd. Paths listed twice are
// kept once. Without any workspace, cwd is the only one.
func Resolve(cfg []config.WorkspaceConfig, extra []string, cwd string) []Folder {
	var folders []Folder
	seen := make(map[string]bool)
	add := func(name, path string) {
		path = filepath.Clean(path)
		if seen[path] {
			return
		}
		seen[path] = true
		if name == "" {
			name = filepath.Base(path)
		}
		folders = append(folders, Folder{Name: name, Path: path})
	}

	for _, ws := range cfg {
		add(ws.Name, ws.Path)
	}
	for _, p := range extra {
		if !filepath.IsAbs(p) {
			p = filepath.Join(cwd, p)
		}
		add("", p)
	}

	if len(folders) == 0 {
		add("", cwd)
	}
	return folders
}

// Identify returns the workspace containing dir. With nested workspaces
// the deepest one wins.
func Identify(folders []Folder, dir string) (Folder, bool) {
	dir = filepath.Clean(dir)
	var best Folder
	found := false
	for _, f := range folders {
		if !contains(f.Path, dir) {
			continue
		}
		if !found || len(f.Path) > len(best.Path) {
			best, found = f, true
		}
	}
	return best, found
}

// Join returns the absolute destination for a folder relative to the
// workspace root.
func Join(f Folder, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s is absolute", ErrOutsideWorkspace, rel)
	}
	dest := filepath.Join(f.Path, rel)
	if !contains(f.Path, dest) {
		return "", fmt.Errorf("%w: %s", ErrOutsideWorkspace, rel)
	}
	return dest, nil
}

// contains reports whether path is root or below it.
func contains(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
