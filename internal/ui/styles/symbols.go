package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/x/ansi"
)

// Glyphs used by prompts and command output
const (
	CursorSymbol  = "›"
	CreatedSymbol = "✓"
	PlannedSymbol = "○"
)

// FormatCreated renders one line of the create summary: a status symbol
// followed by the display path, linked to the file at abs with an OSC 8
// hyperlink when link is true. Dry runs use the planned symbol.
func FormatCreated(display, abs string, dryRun, link bool) string {
	symbol := SuccessStyle.Render(CreatedSymbol)
	if dryRun {
		symbol = MutedStyle.Render(PlannedSymbol)
	}

	text := display
	if link && filepath.IsAbs(abs) {
		text = ansi.SetHyperlink("file://"+filepath.ToSlash(abs)) + display + ansi.ResetHyperlink()
	}
	return fmt.Sprintf("%s %s", symbol, text)
}
