package views

import (
	"tagpicker/internal/anim"
	"tagpicker/internal/tags"
	"tagpicker/ui/tui/state"

	zone "github.com/lrstanley/bubblezone"
)

// Flight is a row currently sliding between lists.
type Flight struct {
	Tag    tags.Tag
	From   tags.List
	Origin anim.Position
	Offset int
}

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Layout Layout

	// Component States
	AnimCursor float64
	Flights    []Flight
	Angle      func(tags.Tag) float64
	Footer     string

	// Zones marks clickable rows. Nil disables marking.
	Zones *zone.Manager
}

// View defines the contract for any renderable piece of the screen.
type View interface {
	Render(s state.ScreenState, props ViewProps) string
}
