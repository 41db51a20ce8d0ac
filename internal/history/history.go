// Package history remembers where files were created, per workspace.
//
// The destination prompt offers recent folders first and the template
// picker starts on the template used last in the workspace.
package history

import (
	"cmp"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/raphi011/filebatch/internal/storage"
)

// maxEntries bounds the history file; the least recently used entries go.
const maxEntries = 200

// now is replaced in tests.
var now = time.Now

// Entry is one destination folder of a workspace.
type Entry struct {
	Workspace string    `json:"workspace"`
	Folder    string    `json:"folder"`
	Template  string    `json:"template"`
	UseCount  int       `json:"use_count"`
	LastUsed  time.Time `json:"last_used"`
}

// History stores recently used destinations
type History struct {
	Entries []Entry `json:"entries"`
}

// Path returns the path to the history file
func Path() (string, error) {
	dir, err := storage.StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Load reads the history from path. A missing or corrupted file yields an
// empty history.
func Load(path string) (*History, error) {
	var h History
	if err := storage.LoadJSON(path, &h); err != nil {
		if os.IsNotExist(err) {
			return &History{}, nil
		}
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, err
		}
		// Corrupted - start fresh
		return &History{}, nil
	}
	return &h, nil
}

// Save writes the history to path atomically
func (h *History) Save(path string) error {
	return storage.SaveJSON(path, h)
}

// Update loads the history at path, applies fn and saves the result while
// holding the state file lock.
func Update(path string, fn func(h *History)) error {
	return storage.WithLock(path, func() error {
		h, err := Load(path)
		if err != nil {
			return err
		}
		fn(h)
		return h.Save(path)
	})
}

// Record notes that files were created from template in folder of the
// workspace at workspacePath.
func (h *History) Record(workspacePath, folder, template string) {
	t := now()
	for i := range h.Entries {
		e := &h.Entries[i]
		if e.Workspace == workspacePath && e.Folder == folder {
			e.Template = template
			e.UseCount++
			e.LastUsed = t
			return
		}
	}

	h.Entries = append(h.Entries, Entry{
		Workspace: workspacePath,
		Folder:    folder,
		Template:  template,
		UseCount:  1,
		LastUsed:  t,
	})

	if len(h.Entries) > maxEntries {
		h.sort()
		h.Entries = h.Entries[:maxEntries]
	}
}

// Remove drops the entry for folder of the workspace at workspacePath.
// Reports whether an entry was removed.
func (h *History) Remove(workspacePath, folder string) bool {
	n := len(h.Entries)
	h.Entries = slices.DeleteFunc(h.Entries, func(e Entry) bool {
		return e.Workspace == workspacePath && e.Folder == folder
	})
	return len(h.Entries) != n
}

// Folders returns the folders used in a workspace, most recent first.
func (h *History) Folders(workspacePath string) []string {
	if h == nil {
		return nil
	}
	var folders []string
	for _, e := range h.forWorkspace(workspacePath) {
		folders = append(folders, e.Folder)
	}
	return folders
}

// Template returns the label of the template used last in a workspace.
func (h *History) Template(workspacePath string) string {
	if h == nil {
		return ""
	}
	entries := h.forWorkspace(workspacePath)
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Template
}

// Recent returns all entries, most recent first.
func (h *History) Recent() []Entry {
	entries := slices.Clone(h.Entries)
	sortEntries(entries)
	return entries
}

func (h *History) forWorkspace(workspacePath string) []Entry {
	var entries []Entry
	for _, e := range h.Entries {
		if e.Workspace == workspacePath {
			entries = append(entries, e)
		}
	}
	sortEntries(entries)
	return entries
}

func (h *History) sort() {
	sortEntries(h.Entries)
}

// sortEntries orders by last use, then by use count, newest first.
func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := b.LastUsed.Compare(a.LastUsed); c != 0 {
			return c
		}
		return cmp.Compare(b.UseCount, a.UseCount)
	})
}
