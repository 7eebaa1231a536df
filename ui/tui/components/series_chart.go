package components

import (
	"sysdash/internal/history"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
)

// Series is one line on a chart.
type Series struct {
	Points []history.Sample
	Style  lipgloss.Style
}

// SeriesChart plots percentage series over a sliding time window with
// braille lines. The y-axis is fixed at [0,100].
type SeriesChart struct {
	Chart  linechart.Model
	Width  int
	Height int

	minX, maxX float64
	series     []Series
}

func NewSeriesChart(width, height int) *SeriesChart {
	// width, height, minX, maxX, minY, maxY
	return &SeriesChart{
		Chart:  linechart.New(width, height, 0, 1, 0, 100),
		Width:  width,
		Height: height,
		maxX:   1,
	}
}

func (c *SeriesChart) Resize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	c.Width = w
	c.Height = h
	c.redraw()
}

// Plot replaces the chart contents. Points outside [minX, maxX] are pinned
// to the nearest edge.
func (c *SeriesChart) Plot(minX, maxX float64, series ...Series) {
	if maxX <= minX {
		maxX = minX + 1
	}
	c.minX, c.maxX = minX, maxX
	c.series = series
	c.redraw()
}

func (c *SeriesChart) redraw() {
	c.Chart = linechart.New(c.Width, c.Height, c.minX, c.maxX, 0, 100)
	for _, s := range c.series {
		for i := 0; i+1 < len(s.Points); i++ {
			c.Chart.DrawBrailleLineWithStyle(c.point(s.Points[i]), c.point(s.Points[i+1]), s.Style)
		}
	}
	c.Chart.DrawXYAxisAndLabel()
}

func (c *SeriesChart) point(s history.Sample) canvas.Float64Point {
	x := s.Elapsed
	if x < c.minX {
		x = c.minX
	}
	if x > c.maxX {
		x = c.maxX
	}
	return canvas.Float64Point{X: x, Y: s.Value}
}

func (c *SeriesChart) View() string {
	return c.Chart.View()
}
