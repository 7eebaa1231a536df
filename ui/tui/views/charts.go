package views

import (
	"fmt"

	"sysdash/ui/tui/state"
	"sysdash/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type CPUChartView struct{}

func (v CPUChartView) Render(s state.AppState, props ViewProps) string {
	title := lipgloss.JoinHorizontal(lipgloss.Left,
		styles.PanelTitleStyle.Render("CPU: "),
		styles.CPUStyle.Render(fmt.Sprintf("%.2f%%", s.Frame.CPU.Percent)),
	)
	return panel(title, props.CPUChartView, props.Width, props.Height)
}

type MemoryChartView struct{}

func (v MemoryChartView) Render(s state.AppState, props ViewProps) string {
	mem := s.Frame.Memory
	title := lipgloss.JoinHorizontal(lipgloss.Left,
		styles.PanelTitleStyle.Render("Memory: "),
		styles.RAMStyle.Render(fmt.Sprintf("RAM %.2f%% ", mem.RAMPercent)),
		styles.SwapStyle.Render(fmt.Sprintf("Swap %.2f%%", mem.SwapPercent)),
	)
	return panel(title, props.MemChartView, props.Width, props.Height)
}
