// Package tags holds the suggested/selected tag lists behind the picker screen.
package tags

import (
	"log/slog"
	"slices"
)

// Tag is a short text label for a category.
type Tag = string

// List identifies one of the two collections owned by a Store.
type List int

const (
	Suggested List = iota
	Selected
)

func (l List) String() string {
	switch l {
	case Suggested:
		return "suggested"
	case Selected:
		return "selected"
	default:
		return "unknown"
	}
}

// Other returns the opposite list.
func (l List) Other() List {
	if l == Suggested {
		return Selected
	}
	return Suggested
}

// DefaultSeed is the tag set InitializeSuggested falls back to.
var DefaultSeed = []Tag{"Android", "Website", "AI/ML", "Cyber Security"}

// ChangeKind describes what happened to a store.
type ChangeKind int

const (
	ChangeSeeded ChangeKind = iota
	ChangeSelected
	ChangeDeselected
)

// Change is delivered to listeners after every mutation.
type Change struct {
	Kind ChangeKind
	Tag  Tag
	From List
	To   List
}

// Listener observes store mutations.
type Listener func(Change)

// Store owns the suggested and selected tag sequences.
//
// A tag is meant to live in at most one list at a time, but nothing enforces
// it: Select on a tag that is not suggested still appends it to selected.
// Store is not safe for concurrent use; it belongs to the UI loop.
type Store struct {
	seed      []Tag
	suggested []Tag
	selected  []Tag
	rotated   map[Tag]bool

	listeners map[int]Listener
	nextID    int
	logger    *slog.Logger
}

// NewStore creates an empty store. A nil or empty seed means DefaultSeed.
func NewStore(seed []Tag) *Store {
	if len(seed) == 0 {
		seed = DefaultSeed
	}
	return &Store{
		seed:      slices.Clone(seed),
		rotated:   make(map[Tag]bool),
		listeners: make(map[int]Listener),
		logger:    slog.Default().With("component", "tags"),
	}
}

// InitializeSuggested appends the seed set to the suggested list.
func (s *Store) InitializeSuggested() {
	s.suggested = append(s.suggested, s.seed...)
	s.logger.Debug("seeded suggested tags", "count", len(s.seed))
	s.notify(Change{Kind: ChangeSeeded, To: Suggested})
}

// Select moves tag from suggested to selected.
func (s *Store) Select(tag Tag) {
	s.selected = append(s.selected, tag)
	s.suggested = remove(s.suggested, tag)
	s.logger.Debug("tag selected", "tag", tag, "selected", len(s.selected))
	s.notify(Change{Kind: ChangeSelected, Tag: tag, From: Suggested, To: Selected})
}

// Deselect moves tag from selected back to the end of suggested.
func (s *Store) Deselect(tag Tag) {
	s.selected = remove(s.selected, tag)
	s.suggested = append(s.suggested, tag)
	s.logger.Debug("tag deselected", "tag", tag, "suggested", len(s.suggested))
	s.notify(Change{Kind: ChangeDeselected, Tag: tag, From: Selected, To: Suggested})
}

// Move dispatches to Select or Deselect depending on the source list.
func (s *Store) Move(tag Tag, from List) {
	if from == Suggested {
		s.Select(tag)
		return
	}
	s.Deselect(tag)
}

// Suggested returns a copy of the suggested list.
func (s *Store) Suggested() []Tag { return slices.Clone(s.suggested) }

// Selected returns a copy of the selected list.
func (s *Store) Selected() []Tag { return slices.Clone(s.selected) }

// Tags returns a copy of the given list.
func (s *Store) Tags(l List) []Tag {
	if l == Selected {
		return s.Selected()
	}
	return s.Suggested()
}

func (s *Store) Len(l List) int {
	if l == Selected {
		return len(s.selected)
	}
	return len(s.suggested)
}

func (s *Store) Contains(l List, tag Tag) bool {
	if l == Selected {
		return slices.Contains(s.selected, tag)
	}
	return slices.Contains(s.suggested, tag)
}

// MarkRotated sets the one-way rotation flag for tag.
func (s *Store) MarkRotated(tag Tag) {
	s.rotated[tag] = true
}

// Rotated reports whether tag has ever been selected in this session.
func (s *Store) Rotated(tag Tag) bool {
	return s.rotated[tag]
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() { delete(s.listeners, id) }
}

func (s *Store) notify(c Change) {
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if l, ok := s.listeners[id]; ok {
			l(c)
		}
	}
}

// remove drops the first occurrence of tag, like a plain list remove.
func remove(list []Tag, tag Tag) []Tag {
	i := slices.Index(list, tag)
	if i < 0 {
		return list
	}
	return slices.Delete(list, i, i+1)
}
