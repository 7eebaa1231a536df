package tui

import (
	"time"

	"sysdash/internal/engine"
	"sysdash/internal/output"
	"sysdash/ui/tui/components"
	"sysdash/ui/tui/state"
	"sysdash/ui/tui/styles"
	"sysdash/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// KeySink receives keys destined for the refresh loop.
type KeySink interface {
	Deliver(k engine.Key) bool
}

// MainModel is the Bubble Tea Model acting as the Controller. It never
// samples; frames arrive from the refresh loop as FrameMsg.
type MainModel struct {
	keys    KeySink
	quitKey string

	state    state.AppState
	spinner  spinner.Model
	cpuChart *components.SeriesChart
	memChart *components.SeriesChart
	gauges   []*components.DiskGauge
	spring   harmonica.Spring

	animating bool
	quitting  bool
	width     int
	height    int
}

// Messages
type FrameMsg struct {
	Frame output.Frame
}
type AnimateMsg time.Time

func InitialModel(keys KeySink, quitKey string) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	if quitKey == "" {
		quitKey = "q"
	}

	// Critically damped; fills never overshoot the target.
	spring := harmonica.NewSpring(harmonica.FPS(60), 6.0, 1.0)

	return MainModel{
		keys:     keys,
		quitKey:  quitKey,
		spinner:  s,
		cpuChart: components.NewSeriesChart(30, 10),
		memChart: components.NewSeriesChart(30, 10),
		spring:   spring,
	}
}

func (m *MainModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case FrameMsg:
		return m.handleFrameMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case spinner.TickMsg:
		if m.state.Ready() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.quitKey, "ctrl+c":
		m.quitting = true
		m.keys.Deliver(engine.KeyQuit)
		return m, tea.Quit
	}
	m.keys.Deliver(engine.KeyOther)
	return m, nil
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	g := views.NewGrid(m.width, m.height)
	w, h := g.Chart()
	m.cpuChart.Resize(w, h)
	m.memChart.Resize(w, h)
	m.resizeGauges(g)
	return m, nil
}

func (m *MainModel) resizeGauges(g views.Grid) {
	w, h := g.Gauge(len(m.gauges))
	for _, gauge := range m.gauges {
		gauge.Resize(w, h)
	}
}

func (m *MainModel) handleFrameMsg(msg FrameMsg) (tea.Model, tea.Cmd) {
	f := msg.Frame
	m.state.Frame = f

	minX, maxX := f.XRange()
	m.cpuChart.Plot(minX, maxX, components.Series{Points: f.CPU.Series, Style: styles.CPUStyle})
	m.memChart.Plot(minX, maxX,
		components.Series{Points: f.Memory.RAM, Style: styles.RAMStyle},
		components.Series{Points: f.Memory.Swap, Style: styles.SwapStyle},
	)

	m.syncGauges(f.Disks)
	m.resizeGauges(views.NewGrid(m.width, m.height))

	if m.animating {
		return m, nil
	}
	m.animating = true
	return m, animateCmd()
}

// syncGauges matches gauges to the new disk set by name so that a disk
// keeps its animated fill across ticks.
func (m *MainModel) syncGauges(disks []output.DiskGauge) {
	prev := make(map[string]*components.DiskGauge, len(m.gauges))
	for _, g := range m.gauges {
		prev[g.Gauge.Name] = g
	}

	next := make([]*components.DiskGauge, 0, len(disks))
	for _, d := range disks {
		if g, ok := prev[d.Name]; ok {
			g.Set(d)
			next = append(next, g)
			continue
		}
		next = append(next, components.NewDiskGauge(d))
	}
	m.gauges = next
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	moving := false
	for _, g := range m.gauges {
		if g.Step(m.spring) {
			moving = true
		}
	}
	if !moving {
		m.animating = false
		return m, nil
	}
	return m, animateCmd()
}

func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}

	gaugeViews := make([]string, len(m.gauges))
	for i, g := range m.gauges {
		gaugeViews[i] = g.View()
	}

	return views.RenderDashboard(m.state, views.ViewProps{
		Width:        m.width,
		Height:       m.height,
		SpinnerView:  m.spinner.View(),
		CPUChartView: m.cpuChart.View(),
		MemChartView: m.memChart.View(),
		GaugeViews:   gaugeViews,
		QuitKey:      m.quitKey,
	})
}
