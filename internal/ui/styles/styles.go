// Package styles provides shared lipgloss styles for the prompts and the
// command output.
//
// Colors are package variables so Init can swap the whole palette once
// config is loaded.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme
var (
	// Primary is the main accent color (titles, borders)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for the selected option
	Accent color.Color = lipgloss.Color("212")

	Success color.Color = lipgloss.Color("82")
	Error   color.Color = lipgloss.Color("196")

	// Muted is used for hints and placeholders
	Muted  color.Color = lipgloss.Color("240")
	Normal color.Color = lipgloss.Color("252")
	Info   color.Color = lipgloss.Color("244")
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)

	// InfoStyle applies the info color with italic
	InfoStyle = lipgloss.NewStyle().
			Foreground(Info).
			Italic(true)

	// TitleStyle renders prompt titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// HighlightStyle marks fuzzy-matched characters
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)
