package ui

import "github.com/charmbracelet/lipgloss"

// ColorReset returns the escape code that clears formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the primary color.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the info color.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ResultBox returns the lipgloss style framing a result summary.
func ResultBox() lipgloss.Style {
	t := GetCurrentTheme()
	style := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	if t.Name == NoColorTheme.Name {
		return style
	}
	return style.BorderForeground(t.Accent)
}

// Label returns the style of a field label inside the result box.
func Label() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetCurrentTheme().Muted).Width(11)
}
