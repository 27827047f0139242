package views

import (
	"tagpicker/internal/anim"
	"tagpicker/internal/tags"
	"tagpicker/ui/tui/state"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	marginX   = 1 // screen edge to panel border
	contentX  = marginX + 2
	minPanelH = 4
)

// RowLayout is where one tag row sits on screen.
type RowLayout struct {
	Tag   tags.Tag
	Index int
	Pos   anim.Position
}

// PanelLayout is the geometry of one list panel.
type PanelLayout struct {
	List     tags.List
	Top      int
	Height   int
	BodyTop  int
	Capacity int
	Rows     []RowLayout
	Slot     anim.Position
}

// Layout is the geometry of the whole screen.
type Layout struct {
	Width, Height int
	RowWidth      int
	Panels        [2]PanelLayout // indexed by tags.List
}

func (l Layout) Panel(list tags.List) PanelLayout {
	return l.Panels[list]
}

// ComputeLayout splits the screen: selected panel on top, suggested below,
// a spacer line between them and footerLines at the bottom.
func ComputeLayout(width, height, footerLines int, s state.ScreenState) Layout {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	avail := height - footerLines - 1
	if avail < 2*minPanelH {
		avail = 2 * minPanelH
	}
	topH := avail / 2
	bottomH := avail - topH

	rowWidth := width - 2*marginX - 4
	if rowWidth < 8 {
		rowWidth = 8
	}

	l := Layout{Width: width, Height: height, RowWidth: rowWidth}
	l.Panels[tags.Selected] = panelLayout(tags.Selected, 0, topH, s)
	l.Panels[tags.Suggested] = panelLayout(tags.Suggested, topH+1, bottomH, s)
	return l
}

func panelLayout(list tags.List, top, height int, s state.ScreenState) PanelLayout {
	p := PanelLayout{
		List:     list,
		Top:      top,
		Height:   height,
		BodyTop:  top + 2,
		Capacity: max(0, height-3),
	}
	items := s.Tags(list)
	scroll := s.Scroll[list]
	for i := scroll; i < len(items) && i-scroll < p.Capacity; i++ {
		p.Rows = append(p.Rows, RowLayout{
			Tag:   items[i],
			Index: i,
			Pos:   anim.Position{X: contentX, Y: p.BodyTop + i - scroll},
		})
	}

	slotY := p.BodyTop + len(items) - scroll
	if p.Capacity > 0 && slotY > p.BodyTop+p.Capacity-1 {
		slotY = p.BodyTop + p.Capacity - 1
	}
	if slotY < p.BodyTop {
		slotY = p.BodyTop
	}
	p.Slot = anim.Position{X: contentX, Y: slotY}
	return p
}

// Record replaces the registry contents with this layout's anchors.
func (l Layout) Record(r *anim.Registry) {
	r.Reset()
	for _, p := range l.Panels {
		role := RoleFor(p.List)
		for _, row := range p.Rows {
			r.Record(row.Tag, role, row.Pos)
		}
		r.RecordSlot(role, p.Slot, p.BodyTop+p.Capacity-1)
	}
}

// RoleFor maps a store list onto its anchor role.
func RoleFor(list tags.List) anim.Role {
	if list == tags.Selected {
		return anim.RoleSelected
	}
	return anim.RoleSuggested
}
