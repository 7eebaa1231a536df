package views

import (
	"sysdash/ui/tui/state"
	"sysdash/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type InfoView struct{}

func (v InfoView) Render(s state.AppState, props ViewProps) string {
	info := s.Frame.Info
	row := func(label, value string) string {
		return styles.LabelStyle.Render(label+": ") + value
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		row("Hostname", info.Hostname),
		row("CPU", info.CPUModel),
		row("RAM", info.RAM),
		row("Date/Time", info.DateTime),
		row("Uptime", info.Uptime),
	)

	return panel(styles.PanelTitleStyle.Render("System Info"), body, props.Width, props.Height)
}
