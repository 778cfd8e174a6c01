package gallery

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kiran-8287/tavla/internal/ui/components"
)

// Gallery chrome styles are derived from the active theme at render time so
// a mode switch restyles the whole screen on the next frame.

func summaryStyle(t components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Palette.Neutral.Base).
		Faint(true)
}

func statusInfoStyle(t components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Palette.Success.Base)
}

func statusErrorStyle(t components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Palette.Danger.Base).
		Bold(true)
}

func footerStyle(t components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Palette.Neutral.Base).
		Faint(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(t.Palette.Neutral.Muted)
}

func helpKeyStyle(t components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Palette.Primary.Base).
		Bold(true).
		Width(10)
}
