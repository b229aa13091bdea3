package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SuccessGreen)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorRed)

	// Section header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(HeaderCyan)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(MutedGray)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextWhite)
)

// PrintSuccess prints a one-line success message to stdout.
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintError prints a one-line error message to stderr.
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("✗ Error:"), message)
}
