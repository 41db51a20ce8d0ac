package prompt

import (
	"charm.land/lipgloss/v2"

	"github.com/raphi011/filebatch/internal/ui/styles"
)

// Style functions read the theme on every call so styles.Init applies
// to prompts created afterwards.

// frameStyle wraps the whole prompt (left border only)
func frameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Primary).
		PaddingLeft(2).
		PaddingRight(2)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Primary)
}

// positionStyle renders "(2/4)" next to the title
func positionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted)
}

func optionSelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Accent)
}

func optionNormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Normal)
}

func optionDescriptionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted)
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginTop(1)
}

func filterStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
}

func matchHighlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true).
		Underline(true)
}
