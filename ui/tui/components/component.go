package components

// Widget is a sized, stateless-to-the-caller piece of the dashboard.
// The model owns widgets, resizes them on window changes and asks for
// their View each render.
type Widget interface {
	Resize(width, height int)
	View() string
}

var (
	_ Widget = (*SeriesChart)(nil)
	_ Widget = (*DiskGauge)(nil)
)
