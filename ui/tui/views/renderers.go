package views

import (
	"sysdash/ui/tui/state"
)

func RenderDashboard(s state.AppState, props ViewProps) string {
	if !s.Ready() {
		return WaitingView{}.Render(s, props)
	}
	return DashboardView{}.Render(s, props)
}
