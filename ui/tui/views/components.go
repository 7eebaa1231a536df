package views

import (
	"sysdash/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// panel draws a bordered box of exactly w x h cells with a title line.
func panel(title, body string, w, h int) string {
	style := styles.PanelStyle.
		Width(max(w-2, 1)).
		Height(max(h-2, 1)).
		MaxHeight(max(h, 1))

	if title == "" {
		return style.Render(body)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

// blank fills w x h with nothing.
func blank(w, h int) string {
	return lipgloss.NewStyle().Width(max(w, 1)).Height(max(h, 1)).Render("")
}
