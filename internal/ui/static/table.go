// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables.
package static

import (
	"fmt"
	"path/filepath"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/filebatch/internal/history"
	"github.com/raphi011/filebatch/internal/templates"
	"github.com/raphi011/filebatch/internal/ui/styles"
)

// Table headers
var (
	TemplateHeaders = []string{"TEMPLATE", "FILES", "DESCRIPTION"}
	RecentHeaders   = []string{"WORKSPACE", "FOLDER", "TEMPLATE", "USES", "LAST USED"}
)

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	return t.String() + "\n"
}

// TemplateTableRow returns the columns of TemplateHeaders for t.
func TemplateTableRow(t templates.Template) []string {
	return []string{t.Label, t.SuffixList(), styles.MutedStyle.Render(t.Description)}
}

// RecentTableRow returns the columns of RecentHeaders for e. The workspace
// is shown by its base name.
func RecentTableRow(e history.Entry, now time.Time) []string {
	return []string{
		filepath.Base(e.Workspace),
		e.Folder,
		e.Template,
		fmt.Sprintf("%d", e.UseCount),
		FormatAge(now.Sub(e.LastUsed)),
	}
}

// FormatAge renders a duration as "3 hours ago".
func FormatAge(d time.Duration) string {
	unit := func(n int, name string) string {
		if n == 1 {
			return fmt.Sprintf("1 %s ago", name)
		}
		return fmt.Sprintf("%d %ss ago", n, name)
	}

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return unit(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return unit(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return unit(int(d/(24*time.Hour)), "day")
	default:
		return unit(int(d/(30*24*time.Hour)), "month")
	}
}

// TemplateTable renders templates as a table.
func TemplateTable(list []templates.Template) string {
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, TemplateTableRow(t))
	}
	return RenderTable(TemplateHeaders, rows)
}

// RecentTable renders history entries as a table.
func RecentTable(entries []history.Entry, now time.Time) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, RecentTableRow(e, now))
	}
	return RenderTable(RecentHeaders, rows)
}
