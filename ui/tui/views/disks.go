package views

import (
	"sysdash/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

// DisksView stacks one gauge per unique disk. With no disks the area stays
// empty.
type DisksView struct{}

func (v DisksView) Render(s state.AppState, props ViewProps) string {
	if len(props.GaugeViews) == 0 {
		return blank(props.Width, props.Height)
	}
	return panel("", lipgloss.JoinVertical(lipgloss.Left, props.GaugeViews...), props.Width, props.Height)
}
