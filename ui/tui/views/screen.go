package views

import (
	"strings"

	"tagpicker/internal/tags"
	"tagpicker/ui/tui/state"
	"tagpicker/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// ScreenView stacks the selected panel over the suggested panel and draws
// sliding rows on top.
type ScreenView struct{}

func (v ScreenView) Render(s state.ScreenState, props ViewProps) string {
	l := props.Layout

	body := lipgloss.JoinVertical(lipgloss.Left,
		RenderPanel(s, TagListView{List: tags.Selected}, props),
		"",
		RenderPanel(s, TagListView{List: tags.Suggested}, props),
	)
	if props.Footer != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, props.Footer)
	}

	screen := lipgloss.Place(l.Width, l.Height, lipgloss.Left, lipgloss.Top, body,
		lipgloss.WithWhitespaceBackground(styles.Background),
	)
	if props.Zones != nil {
		screen = props.Zones.Scan(screen)
	}
	return drawFlights(screen, props)
}

func drawFlights(screen string, props ViewProps) string {
	if len(props.Flights) == 0 {
		return screen
	}
	lines := strings.Split(screen, "\n")
	for _, f := range props.Flights {
		y := f.Origin.Y + f.Offset
		if y < 0 || y >= len(lines) {
			continue
		}
		row := RenderRow(f.Tag, angleOf(props, f.Tag), props.Layout.RowWidth, false)
		lines[y] = Overlay(lines[y], row, f.Origin.X)
	}
	return strings.Join(lines, "\n")
}
