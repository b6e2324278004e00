// Package styles provides the lipgloss styles brws uses on stderr.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors
var (
	// Error is used for error headlines (red)
	Error color.Color = lipgloss.Color("196")

	// Accent highlights names inside messages (pink)
	Accent color.Color = lipgloss.Color("212")

	// Muted is used for secondary detail (gray)
	Muted color.Color = lipgloss.Color("244")
)

var (
	// ErrorStyle renders error headlines
	ErrorStyle = lipgloss.NewStyle().Foreground(Error).Bold(true)

	// AccentStyle renders highlighted names
	AccentStyle = lipgloss.NewStyle().Foreground(Accent)

	// MutedStyle renders secondary detail
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Bullet prefixes list items in multi-line messages.
const Bullet = "  - "
