package views

import (
	"math"

	"tagpicker/internal/tags"
	"tagpicker/ui/tui/state"
	"tagpicker/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// TagListView renders one of the two list panels.
type TagListView struct {
	List tags.List
}

func (v TagListView) Title() string {
	if v.List == tags.Selected {
		return "Selected Tags"
	}
	return "Suggested Tags"
}

func (v TagListView) Render(s state.ScreenState, props ViewProps) string {
	panel := props.Layout.Panel(v.List)
	width := props.Layout.RowWidth

	lines := []string{styles.PanelTitleStyle.Width(width).Render(v.Title())}

	lifted := liftedIndexes(v.List, s.Tags(v.List), props.Flights)
	for _, row := range panel.Rows {
		if lifted[row.Index] {
			lines = append(lines, RenderGap(width))
			continue
		}
		active := s.Focus == v.List && cursorStrength(row.Index, props.AnimCursor) > 0.5
		rendered := RenderRow(row.Tag, angleOf(props, row.Tag), width, active)
		if props.Zones != nil {
			rendered = props.Zones.Mark(RowZoneID(v.List, row.Index), rendered)
		}
		lines = append(lines, rendered)
	}

	return styles.PanelStyle.
		Width(width + 2).
		Height(max(0, panel.Height-2)).
		MarginLeft(marginX).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// cursorStrength follows the spring-driven cursor: 1 on the row it rests
// on, fading to 0 one row away.
func cursorStrength(index int, animCursor float64) float64 {
	dist := math.Abs(float64(index) - animCursor)
	if dist >= 1 {
		return 0
	}
	return 1 - dist
}

// liftedIndexes marks, for each flight leaving list, the first row holding
// its tag. That is the row the store will remove when the flight lands.
func liftedIndexes(list tags.List, items []tags.Tag, flights []Flight) map[int]bool {
	lifted := make(map[int]bool)
	for _, f := range flights {
		if f.From != list {
			continue
		}
		for i, t := range items {
			if t == f.Tag && !lifted[i] {
				lifted[i] = true
				break
			}
		}
	}
	return lifted
}

func angleOf(props ViewProps, tag tags.Tag) float64 {
	if props.Angle == nil {
		return 0
	}
	return props.Angle(tag)
}
