// Package styles provides shared lipgloss styles for husk's terminal
// output, so status symbols look the same everywhere.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Success is used for up-to-date hooks (green)
	Success = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))

	// Warning is used for outdated hooks (orange)
	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	// Error is used for foreign hooks blocking an install (red)
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// Muted is used for hooks that are not installed (gray)
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)
)

// Mark renders a status symbol with the given style, or plain when
// styling is disabled (non-TTY output).
func Mark(style lipgloss.Style, symbol string, styled bool) string {
	if !styled {
		return symbol
	}
	return style.Render(symbol)
}
