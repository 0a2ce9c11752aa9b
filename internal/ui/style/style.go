// Package style holds the colours and glyphs shared by log and progress output.
package style

import "github.com/charmbracelet/lipgloss"

// Colours.
var (
	Accent  = lipgloss.Color("#5B8DEF")
	Muted   = lipgloss.Color("#6B7280")
	Success = lipgloss.Color("#16A34A")
	Failure = lipgloss.Color("#DC2626")
	Caution = lipgloss.Color("#D97706")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
