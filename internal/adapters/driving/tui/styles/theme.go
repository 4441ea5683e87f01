// Package styles holds the colour palette and lipgloss styles of the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette every style is derived from.
type Theme struct {
	Accent    lipgloss.Color // titles and the selected row
	Highlight lipgloss.Color // list headings and suggestions
	Text      lipgloss.Color
	Dim       lipgloss.Color
	Surface   lipgloss.Color // status bar background
	Outline   lipgloss.Color // input borders

	OK   lipgloss.Color
	Warn lipgloss.Color
	Fail lipgloss.Color
}

// DefaultTheme returns the dark palette used unless another is given.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#7DCFFF"),
		Highlight: lipgloss.Color("#BB9AF7"),
		Text:      lipgloss.Color("#C0CAF5"),
		Dim:       lipgloss.Color("#565F89"),
		Surface:   lipgloss.Color("#16161E"),
		Outline:   lipgloss.Color("#3B4261"),
		OK:        lipgloss.Color("#9ECE6A"),
		Warn:      lipgloss.Color("#E0AF68"),
		Fail:      lipgloss.Color("#F7768E"),
	}
}

// Styles are the rendered styles shared by views and components.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style

	// Suggestion renders autocomplete entries under the query input.
	Suggestion lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles derives the styles from theme, or from DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Styles{
		theme: theme,

		Title:    fg(theme.Accent).Bold(true),
		Subtitle: fg(theme.Highlight).Bold(true),
		Normal:   fg(theme.Text),
		Muted:    fg(theme.Dim),
		Label:    fg(theme.Text).Bold(true),
		Selected: fg(theme.Surface).Background(theme.Accent).Bold(true),

		Suggestion: fg(theme.Highlight).Italic(true),

		Success: fg(theme.OK),
		Warning: fg(theme.Warn).Bold(true),
		Error:   fg(theme.Fail),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Outline).
			Padding(0, 1),
		StatusBar: fg(theme.Dim).Background(theme.Surface).Padding(0, 1),
		Help:      fg(theme.Dim),
	}
}

// DefaultStyles returns styles built from DefaultTheme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
