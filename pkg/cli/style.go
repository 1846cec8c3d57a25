package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for terminal diagnostics.
type Theme struct {
	Primary lipgloss.Color // Success/accent color
	Info    lipgloss.Color // Informational text color
	Warn    lipgloss.Color // Warning and note prefix color
	Err     lipgloss.Color // Error prefix color
	Dim     lipgloss.Color // Dimmed/secondary text color
}

// DefaultTheme is the default bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Info:    lipgloss.Color("#58a6ff"),
	Warn:    lipgloss.Color("#d29922"),
	Err:     lipgloss.Color("#f85149"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Note    lipgloss.Style
	Dim     lipgloss.Style
}

// Diagnostics land on stderr, so color detection must key off stderr
// rather than the package default of stdout.
var renderer = lipgloss.NewRenderer(os.Stderr)

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Success: renderer.NewStyle().Bold(true).Foreground(t.Primary),
		Error:   renderer.NewStyle().Bold(true).Foreground(t.Err),
		Info:    renderer.NewStyle().Foreground(t.Info),
		Warning: renderer.NewStyle().Bold(true).Foreground(t.Warn),
		Note:    renderer.NewStyle().Foreground(t.Warn),
		Dim:     renderer.NewStyle().Foreground(t.Dim),
	}
}

var styles = NewStyles(DefaultTheme)
