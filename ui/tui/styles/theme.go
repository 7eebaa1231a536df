package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	// Series colors
	CPUColor        = lipgloss.Color("9") // light red
	RAMColor        = lipgloss.Color("6") // cyan
	SwapColor       = lipgloss.Color("3") // yellow
	GaugeColor      = lipgloss.Color("#5A8DEE")
	GaugeEmptyColor = lipgloss.Color("#303030")

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			MarginRight(5).
			Padding(0, 1).
			Italic(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().Bold(true)

	LabelStyle = lipgloss.NewStyle().Bold(true)

	GaugeTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFF"))
	GaugeLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAA"))

	CPUStyle  = lipgloss.NewStyle().Foreground(CPUColor)
	RAMStyle  = lipgloss.NewStyle().Foreground(RAMColor)
	SwapStyle = lipgloss.NewStyle().Foreground(SwapColor)

	FooterStyle = lipgloss.NewStyle().Foreground(Subtle)
)
