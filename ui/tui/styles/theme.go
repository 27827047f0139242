package styles

import "github.com/charmbracelet/lipgloss"

var (
	Background = lipgloss.Color("#000000")
	PanelGray  = lipgloss.Color("#D3D3D3")
	RowWhite   = lipgloss.Color("#FFFFFF")
	Ink        = lipgloss.Color("#111111")
	Highlight  = lipgloss.Color("#f27b24")
	Subtle     = lipgloss.Color("#666666")

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PanelGray).
			BorderBackground(Background).
			Background(PanelGray).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Ink).
			Background(PanelGray)

	RowStyle = lipgloss.NewStyle().
			Foreground(Ink).
			Background(RowWhite)

	RowActiveStyle = RowStyle.
			Bold(true).
			Foreground(Highlight)

	// Rows lifted out of a list while they slide.
	GapStyle = lipgloss.NewStyle().
			Background(PanelGray)

	FooterStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(Subtle)
)
