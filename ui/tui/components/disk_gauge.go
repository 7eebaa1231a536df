package components

import (
	"math"

	"sysdash/internal/output"
	"sysdash/ui/tui/styles"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// settle is how close the animated fill must be to its target, with
// negligible velocity, before the gauge stops animating.
const settle = 0.001

// gaugeLines is the full layout: name, bar, label.
const gaugeLines = 3

// DiskGauge renders one disk as a progress bar whose fill eases toward the
// latest percentage.
type DiskGauge struct {
	Gauge  output.DiskGauge
	bar    progress.Model
	Width  int
	Height int

	pos, vel float64 // animated fill in [0,1]
}

func NewDiskGauge(g output.DiskGauge) *DiskGauge {
	bar := progress.New(
		progress.WithSolidFill(string(styles.GaugeColor)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(styles.GaugeEmptyColor)
	return &DiskGauge{Gauge: g, bar: bar}
}

// Set updates the reading the gauge animates toward.
func (d *DiskGauge) Set(g output.DiskGauge) {
	d.Gauge = g
}

func (d *DiskGauge) target() float64 {
	return math.Max(0, math.Min(1, d.Gauge.Percent/100))
}

// Step advances the fill animation one frame and reports whether the gauge
// is still moving.
func (d *DiskGauge) Step(spring harmonica.Spring) bool {
	d.pos, d.vel = spring.Update(d.pos, d.vel, d.target())
	if math.Abs(d.pos-d.target()) < settle && math.Abs(d.vel) < settle {
		d.pos, d.vel = d.target(), 0
		return false
	}
	return true
}

// Snap jumps straight to the target.
func (d *DiskGauge) Snap() {
	d.pos, d.vel = d.target(), 0
}

func (d *DiskGauge) Fill() float64 { return d.pos }

func (d *DiskGauge) Resize(w, h int) {
	d.Width = w
	d.Height = h
}

// View draws the gauge in exactly Height rows. Under three rows the label
// moves onto the name line, and a single row drops the bar.
func (d *DiskGauge) View() string {
	width := d.Width - 2
	if width < 4 {
		width = 4
	}
	d.bar.Width = width

	name := d.Gauge.Name
	if name == "" {
		name = "(unnamed)"
	}

	title := styles.GaugeTitleStyle.Render(name)
	label := styles.GaugeLabelStyle.Render(d.Gauge.Label())
	bar := d.bar.ViewAs(math.Max(0, math.Min(1, d.pos)))

	var lines []string
	switch {
	case d.Height <= 0 || d.Height >= gaugeLines:
		lines = []string{title, bar, label}
	case d.Height == 2:
		lines = []string{title + " " + label, bar}
	default:
		lines = []string{title + " " + label}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if d.Height <= 0 {
		return body
	}
	return lipgloss.NewStyle().
		Height(d.Height).
		MaxHeight(d.Height).
		MaxWidth(max(d.Width, 1)).
		Render(body)
}
