package views

import (
	"fmt"
	"strings"

	"tagpicker/internal/tags"
	"tagpicker/ui/tui/styles"

	"github.com/charmbracelet/x/ansi"
)

// IconFor picks the glyph closest to a plus sign turned by angle degrees.
func IconFor(angle float64) string {
	switch {
	case angle < 15:
		return "+"
	case angle < 30:
		return "✢"
	default:
		return "×"
	}
}

// RowZoneID names the click zone of the row at index in list.
func RowZoneID(list tags.List, index int) string {
	return fmt.Sprintf("tag_%s_%d", list, index)
}

// RenderRow draws one tag row exactly width cells wide.
func RenderRow(tag tags.Tag, angle float64, width int, active bool) string {
	gutter := "  "
	style := styles.RowStyle
	if active {
		gutter = "▸ "
		style = styles.RowActiveStyle
	}
	icon := IconFor(angle)
	textWidth := width - ansi.StringWidth(gutter) - ansi.StringWidth(icon) - 1
	if textWidth < 1 {
		textWidth = 1
	}
	text := ansi.Truncate(tag, textWidth, "…")
	pad := textWidth - ansi.StringWidth(text)
	return style.Render(gutter + text + strings.Repeat(" ", pad) + " " + icon)
}

// RenderGap draws the empty line left behind by a lifted row.
func RenderGap(width int) string {
	return styles.GapStyle.Render(strings.Repeat(" ", width))
}

// Overlay writes over onto base starting at cell column x.
func Overlay(base, over string, x int) string {
	left := ansi.Truncate(base, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	right := ansi.TruncateLeft(base, x+ansi.StringWidth(over), "")
	return left + over + right
}
