package views

import "tagpicker/ui/tui/state"

// RenderScreen renders the full picker screen.
func RenderScreen(s state.ScreenState, props ViewProps) string {
	return ScreenView{}.Render(s, props)
}

// RenderPanel renders a single list panel.
func RenderPanel(s state.ScreenState, list TagListView, props ViewProps) string {
	return list.Render(s, props)
}
