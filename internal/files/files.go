// Package files writes the files of a template to disk.
package files

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raphi011/filebatch/internal/log"
	"github.com/raphi011/filebatch/internal/templates"
)

var (
	// ErrExists is returned when a file to create is already there.
	ErrExists = errors.New("file already exists")
	// ErrNotDirectory is returned when a path component is a regular file.
	ErrNotDirectory = errors.New("not a directory")
)

// Request describes one batch of files.
type Request struct {
	Dir       string // destination folder
	Prefix    string
	Files     []templates.FileSpec
	Overwrite bool
	DryRun    bool
}

// Paths returns the file paths of the request in template order.
func (r Request) Paths() []string {
	paths := make([]string, len(r.Files))
	for i, f := range r.Files {
		paths[i] = filepath.Join(r.Dir, f.AdditionalPath, r.Prefix+f.Suffix)
	}
	return paths
}

// Existing returns the paths of the request that are already regular files.
func Existing(req Request) []string {
	var existing []string
	for _, p := range req.Paths() {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			existing = append(existing, p)
		}
	}
	return existing
}

// Create writes every file of the request and returns their paths.
// All paths are checked before anything is written, so an existing file
// leaves the disk untouched unless Overwrite is set.
func Create(ctx context.Context, req Request) ([]string, error) {
	l := log.FromContext(ctx)
	paths := req.Paths()

	for _, p := range paths {
		info, err := os.Stat(p)
		switch {
		case err == nil:
			if info.IsDir() {
				return nil, fmt.Errorf("%w: %s is a directory", ErrExists, p)
			}
			if !req.Overwrite {
				return nil, fmt.Errorf("%w: %s", ErrExists, p)
			}
		case errors.Is(err, os.ErrNotExist), isNotDir(err):
			if err := checkParents(filepath.Dir(p)); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
	}

	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			return paths[:i], err
		}

		l.Debug("create file", "path", p, "dry_run", req.DryRun, "overwrite", req.Overwrite)
		if req.DryRun {
			continue
		}

		if err := EnsureDir(filepath.Dir(p)); err != nil {
			return paths[:i], err
		}
		content := strings.Join(req.Files[i].Content, "\n")
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			return paths[:i], fmt.Errorf("write %s: %w", p, err)
		}
	}

	return paths, nil
}

// EnsureDir creates path and any missing parents.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDirectory, path)
		}
		return nil
	case !errors.Is(err, os.ErrNotExist) && !isNotDir(err):
		return fmt.Errorf("stat %s: %w", path, err)
	}

	parent := filepath.Dir(path)
	if parent != path {
		if err := EnsureDir(parent); err != nil {
			return err
		}
	}

	if err := os.Mkdir(path, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// checkParents walks up from dir to the first existing path and fails if
// that is not a directory.
func checkParents(dir string) error {
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
			}
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) && !isNotDir(err) {
			return fmt.Errorf("stat %s: %w", dir, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}
