package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a widget embedded in the picker screen. It behaves like a
// tea.Model and can be told the width it has available.
type Component interface {
	tea.Model
	Resize(width int)
}

var _ Component = (*Footer)(nil)
