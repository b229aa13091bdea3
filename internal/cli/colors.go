package cli

import "github.com/charmbracelet/lipgloss"

// Shared colour palette for consistent CLI output
var (
	SuccessGreen = lipgloss.Color("#00AA00")
	ErrorRed     = lipgloss.Color("#DC143C")
	HeaderCyan   = lipgloss.Color("#00AAAA")
	MutedGray    = lipgloss.Color("#888888")
	TextWhite    = lipgloss.Color("#FFFFFF")
)
