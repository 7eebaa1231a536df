package views

import (
	"fmt"

	"sysdash/ui/tui/state"
	"sysdash/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type DashboardView struct{}

func (v DashboardView) Render(s state.AppState, props ViewProps) string {
	g := NewGrid(props.Width, props.Height)
	cell := props
	cell.Width, cell.Height = g.ColW, g.RowH

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		InfoView{}.Render(s, cell),
		DisksView{}.Render(s, cell),
	)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		CPUChartView{}.Render(s, cell),
		MemoryChartView{}.Render(s, cell),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		bottom,
		styles.FooterStyle.Render(fmt.Sprintf("Press '%s' to quit", props.QuitKey)),
	)
}

// WaitingView is shown until the first frame arrives.
type WaitingView struct{}

func (v WaitingView) Render(s state.AppState, props ViewProps) string {
	msg := lipgloss.JoinHorizontal(lipgloss.Left,
		props.SpinnerView,
		styles.TitleStyle.Render("sysdash"),
		" sampling…",
	)
	if props.Width <= 0 || props.Height <= 0 {
		return msg
	}
	return lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, msg)
}
