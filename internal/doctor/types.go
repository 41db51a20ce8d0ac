package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryConfig represents problems with the global config file.
	CategoryConfig IssueCategory = "config"
	// CategoryWorkspace represents missing workspaces or broken local configs.
	CategoryWorkspace IssueCategory = "workspace"
	// CategoryHistory represents problems with the recent destinations file.
	CategoryHistory IssueCategory = "history"
)

// Fix actions.
const (
	FixRemove = "remove" // drop the history entry
	FixReset  = "reset"  // start with an empty history
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // config path, workspace path or destination folder
	Description string        // human-readable description
	FixAction   string        // what --fix would do, empty if manual
	Category    IssueCategory // issue category

	// history entry, for FixRemove
	Workspace string
	Folder    string
}

// IssueStats tracks counts by category.
type IssueStats struct {
	Templates       int // templates in the global config
	Hooks           int // hooks in the global config
	ConfigIssues    int
	WorkspacesValid int
	WorkspaceIssues int
	HistoryValid    int // entries pointing at existing folders
	HistoryIssues   int
}

// Options selects what Run checks.
type Options struct {
	ConfigPath  string
	HistoryPath string
	Fix         bool
}

// Report is the outcome of Run.
type Report struct {
	Issues []Issue
	Stats  IssueStats
	Fixed  int
}

// Remaining returns the number of issues left after fixing.
func (r Report) Remaining() int {
	return len(r.Issues) - r.Fixed
}
