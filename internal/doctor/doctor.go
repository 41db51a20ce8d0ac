package doctor

import (
	"context"
	"fmt"
	"io"

	"github.com/raphi011/filebatch/internal/log"
)

// Run performs the diagnostic checks, writes a summary to w and, with
// opts.Fix, repairs what it can.
func Run(ctx context.Context, w io.Writer, opts Options) Report {
	l := log.FromContext(ctx)
	var report Report

	fmt.Fprintln(w, "Checking config...")
	cfg, configIssues := checkConfig(opts.ConfigPath)
	report.add(CategoryConfig, configIssues)
	report.Stats.Templates = len(cfg.Templates)
	report.Stats.Hooks = len(cfg.Hooks)
	report.Stats.ConfigIssues = len(configIssues)
	l.Debug("checked config", "path", opts.ConfigPath, "issues", len(configIssues))

	fmt.Fprintln(w, "Checking workspaces...")
	valid, wsIssues := checkWorkspaces(cfg.Workspaces)
	report.add(CategoryWorkspace, wsIssues)
	report.Stats.WorkspacesValid = valid
	report.Stats.WorkspaceIssues = len(wsIssues)
	l.Debug("checked workspaces", "valid", valid, "issues", len(wsIssues))

	fmt.Fprintln(w, "Checking history...")
	valid, historyIssues := checkHistory(opts.HistoryPath)
	report.add(CategoryHistory, historyIssues)
	report.Stats.HistoryValid = valid
	report.Stats.HistoryIssues = len(historyIssues)
	l.Debug("checked history", "path", opts.HistoryPath, "valid", valid, "issues", len(historyIssues))

	printSummary(w, report.Stats)

	if len(report.Issues) == 0 {
		fmt.Fprintln(w, "\n✓ No issues found")
		return report
	}

	fmt.Fprintf(w, "\nFound %d issues:\n", len(report.Issues))
	printIssuesByCategory(w, report.Issues)

	if !opts.Fix {
		if fixable(report.Issues) {
			fmt.Fprintln(w, "\nRun 'filebatch doctor --fix' to repair.")
		}
		return report
	}

	if fixable(historyIssues) {
		fmt.Fprintln(w, "\nFixing...")
		report.Fixed = fixHistoryIssues(w, opts.HistoryPath, historyIssues)
	}
	if n := report.Remaining(); n > 0 {
		fmt.Fprintf(w, "\n%d issues need manual repair\n", n)
	}
	return report
}

func (r *Report) add(cat IssueCategory, issues []Issue) {
	for _, issue := range issues {
		issue.Category = cat
		r.Issues = append(r.Issues, issue)
	}
}

func fixable(issues []Issue) bool {
	for _, issue := range issues {
		if issue.FixAction != "" {
			return true
		}
	}
	return false
}

// printSummary prints a categorized summary.
func printSummary(w io.Writer, stats IssueStats) {
	fmt.Fprintln(w)

	if stats.ConfigIssues == 0 {
		fmt.Fprintf(w, "  ✓ config valid (%d templates, %d hooks)\n", stats.Templates, stats.Hooks)
	} else {
		fmt.Fprintln(w, "  ✗ config invalid")
	}

	if stats.WorkspacesValid > 0 {
		fmt.Fprintf(w, "  ✓ %d workspaces valid\n", stats.WorkspacesValid)
	}
	if stats.WorkspaceIssues > 0 {
		fmt.Fprintf(w, "  ⚠ %d workspace issues\n", stats.WorkspaceIssues)
	}

	if stats.HistoryValid > 0 {
		fmt.Fprintf(w, "  ✓ %d recent destinations valid\n", stats.HistoryValid)
	}
	if stats.HistoryIssues > 0 {
		fmt.Fprintf(w, "  ⚠ %d history issues\n", stats.HistoryIssues)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(w io.Writer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryConfig:    "Config issues",
		CategoryWorkspace: "Workspace issues",
		CategoryHistory:   "History issues",
	}

	for _, cat := range []IssueCategory{CategoryConfig, CategoryWorkspace, CategoryHistory} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		fmt.Fprintf(w, "\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			fmt.Fprintf(w, "  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
