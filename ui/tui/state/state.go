package state

import "tagpicker/internal/tags"

// ScreenState is the per-frame snapshot the views render from.
type ScreenState struct {
	Suggested []tags.Tag
	Selected  []tags.Tag

	Focus  tags.List
	Cursor [2]int // indexed by tags.List
	Scroll [2]int // indexed by tags.List
}

// Tags returns the snapshot of list l.
func (s ScreenState) Tags(l tags.List) []tags.Tag {
	if l == tags.Selected {
		return s.Selected
	}
	return s.Suggested
}

// Clamp keeps cursors inside their lists.
func (s *ScreenState) Clamp() {
	for _, l := range []tags.List{tags.Suggested, tags.Selected} {
		n := len(s.Tags(l))
		if s.Cursor[l] >= n {
			s.Cursor[l] = n - 1
		}
		if s.Cursor[l] < 0 {
			s.Cursor[l] = 0
		}
	}
}

// EnsureVisible scrolls list l so its cursor falls within capacity rows.
func (s *ScreenState) EnsureVisible(l tags.List, capacity int) {
	if capacity <= 0 {
		s.Scroll[l] = 0
		return
	}
	c := s.Cursor[l]
	if c < s.Scroll[l] {
		s.Scroll[l] = c
	}
	if c >= s.Scroll[l]+capacity {
		s.Scroll[l] = c - capacity + 1
	}
	s.ClampScroll(l, capacity)
}

// ClampScroll keeps the scroll offset of l between 0 and the last full page.
func (s *ScreenState) ClampScroll(l tags.List, capacity int) {
	maxScroll := len(s.Tags(l)) - capacity
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.Scroll[l] > maxScroll {
		s.Scroll[l] = maxScroll
	}
	if s.Scroll[l] < 0 {
		s.Scroll[l] = 0
	}
}
