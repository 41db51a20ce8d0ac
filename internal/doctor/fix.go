package doctor

import (
	"fmt"
	"io"

	"github.com/raphi011/filebatch/internal/history"
)

// fixHistoryIssues applies the history fixes under the history lock.
// Returns the number of issues fixed.
func fixHistoryIssues(w io.Writer, path string, issues []Issue) int {
	var fixed int
	var messages []string

	err := history.Update(path, func(h *history.History) {
		for _, issue := range issues {
			switch issue.FixAction {
			case FixReset:
				h.Entries = nil
				messages = append(messages, fmt.Sprintf("  ✓ Reset %s", issue.Key))
				fixed++

			case FixRemove:
				if h.Remove(issue.Workspace, issue.Folder) {
					messages = append(messages, fmt.Sprintf("  ✓ Removed %s", issue.Key))
					fixed++
				}
			}
		}
	})
	if err != nil {
		fmt.Fprintf(w, "  ✗ Failed to update history: %v\n", err)
		return 0
	}

	for _, msg := range messages {
		fmt.Fprintln(w, msg)
	}
	return fixed
}
