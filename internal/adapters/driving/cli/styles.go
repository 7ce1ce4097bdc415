package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for command output.
type Theme struct {
	// Status is the colour of HTTP status codes.
	Status lipgloss.Color

	// Detail is the colour of reason phrases and response header keys.
	Detail lipgloss.Color

	// Warning is the colour of remediation hints.
	Warning lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Status:  lipgloss.Color("12"), // Blue
		Detail:  lipgloss.Color("14"), // Cyan
		Warning: lipgloss.Color("11"), // Yellow
	}
}

// Styles contains pre-configured lipgloss styles for command output.
type Styles struct {
	theme *Theme

	// Status renders HTTP status codes.
	Status lipgloss.Style

	// Detail renders reason phrases and response header keys.
	Detail lipgloss.Style

	// Warning renders remediation hints.
	Warning lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Status),

		Detail: lipgloss.NewStyle().
			Foreground(theme.Detail),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),
	}
}

// outputStyles is the style set shared by all commands.
var outputStyles = NewStyles(nil)

// renderStatusLine formats "<code> <reason>" in the response styling.
func renderStatusLine(statusCode int, reason string) string {
	return outputStyles.Status.Render(strconv.Itoa(statusCode)) + " " + outputStyles.Detail.Render(reason)
}
