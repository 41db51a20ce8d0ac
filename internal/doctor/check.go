package doctor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/raphi011/filebatch/internal/config"
	"github.com/raphi011/filebatch/internal/history"
	"github.com/raphi011/filebatch/internal/storage"
)

// checkConfig loads the global config. On failure the defaults are
// returned along with the issue.
func checkConfig(path string) (config.Config, []Issue) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return cfg, []Issue{{
			Key:         path,
			Description: err.Error(),
		}}
	}
	return cfg, nil
}

// checkWorkspaces verifies that every workspace is a directory with a
// valid local config.
func checkWorkspaces(workspaces []config.WorkspaceConfig) (int, []Issue) {
	var valid int
	var issues []Issue

	for _, ws := range workspaces {
		info, err := os.Stat(ws.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			issues = append(issues, Issue{
				Key:         ws.Path,
				Description: fmt.Sprintf("workspace %q does not exist", ws.Name),
			})
			continue
		case err != nil:
			issues = append(issues, Issue{Key: ws.Path, Description: err.Error()})
			continue
		case !info.IsDir():
			issues = append(issues, Issue{
				Key:         ws.Path,
				Description: fmt.Sprintf("workspace %q is not a directory", ws.Name),
			})
			continue
		}

		if _, err := config.LoadLocal(ws.Path); err != nil {
			issues = append(issues, Issue{Key: ws.Path, Description: err.Error()})
			continue
		}
		valid++
	}

	return valid, issues
}

// checkHistory reads the history file and flags entries whose folder is
// gone.
func checkHistory(path string) (int, []Issue) {
	var h history.History
	err := storage.LoadJSON(path, &h)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return 0, []Issue{{Key: path, Description: err.Error()}}
	}
	if err != nil {
		return 0, []Issue{{
			Key:         path,
			Description: fmt.Sprintf("corrupted history file: %v", err),
			FixAction:   FixReset,
		}}
	}

	var valid int
	var issues []Issue
	for _, e := range h.Entries {
		dir := filepath.Join(e.Workspace, e.Folder)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			valid++
			continue
		}
		issues = append(issues, Issue{
			Key:         dir,
			Description: "folder no longer exists",
			FixAction:   FixRemove,
			Workspace:   e.Workspace,
			Folder:      e.Folder,
		})
	}

	return valid, issues
}
