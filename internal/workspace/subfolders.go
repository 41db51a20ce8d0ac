package workspace

import (
	"io/fs"
	"path/filepath"
	"strings"

	"facette.io/natsort"
	"github.com/sahilm/fuzzy"
)

// Limits for the directory walk behind Subfolders.
const (
	maxDepth      = 6
	maxCandidates = 5000
)

// skippedDirs are never suggested, nor walked into.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
}

// Subfolders returns up to limit directories below root, relative to it,
// that fuzzy-match query. An empty query lists directories in natural
// order ("page2" before "page10"). Hidden directories are left out.
func Subfolders(root, query string, limit int) []string {
	candidates := walkDirs(root)

	query = strings.TrimSpace(query)
	if query == "" {
		natsort.Sort(candidates)
		if len(candidates) > limit {
			candidates = candidates[:limit]
		}
		return candidates
	}

	// fuzzy.Find sorts by score, best first
	matches := fuzzy.Find(filepath.ToSlash(query), candidates)
	out := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.Str)
	}
	return out
}

// walkDirs lists sub-directories of root as slash separated relative paths.
func walkDirs(root string) []string {
	var dirs []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directories are skipped, the rest is still useful.
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") || skippedDirs[name] {
			return filepath.SkipDir
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return filepath.SkipDir
		}
		dirs = append(dirs, filepath.ToSlash(rel))
		if len(dirs) >= maxCandidates {
			return filepath.SkipAll
		}
		if strings.Count(rel, string(filepath.Separator))+1 >= maxDepth {
			return filepath.SkipDir
		}
		return nil
	})
	return dirs
}
