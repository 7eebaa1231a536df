package views

// Grid is the 2x2 dashboard layout: info and disks on top, CPU and memory
// charts below, and a one-line footer.
type Grid struct {
	Width, Height int
	ColW, RowH    int
}

const (
	footerLines = 1
	// border (2) plus horizontal padding (2)
	panelChromeW = 4
	// border (2) plus the title line
	panelChromeH = 3
	// the disk panel has no title line
	diskChromeH = 2

	minChartW = 10
	minChartH = 3
)

func NewGrid(width, height int) Grid {
	g := Grid{Width: width, Height: height}
	g.ColW = width / 2
	g.RowH = (height - footerLines) / 2
	return g
}

// Chart returns the inner size of a chart panel.
func (g Grid) Chart() (w, h int) {
	w = g.ColW - panelChromeW
	h = g.RowH - panelChromeH
	if w < minChartW {
		w = minChartW
	}
	if h < minChartH {
		h = minChartH
	}
	return w, h
}

// Gauge returns the size of one disk gauge when n gauges share the disk
// panel equally. Gauges shrink down to a single row before any is cut off.
func (g Grid) Gauge(n int) (w, h int) {
	w = g.ColW - panelChromeW
	if n <= 0 {
		return w, 0
	}
	h = (g.RowH - diskChromeH) / n
	if h < 1 {
		h = 1
	}
	return w, h
}
