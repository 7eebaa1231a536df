package views

import (
	"sysdash/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	SpinnerView  string
	CPUChartView string
	MemChartView string
	GaugeViews   []string
	QuitKey      string
}

// View defines the contract for any renderable panel in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
