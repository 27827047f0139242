package anim

// Position is a cell coordinate on screen.
type Position struct {
	X, Y int
}

// Role says which list an anchor was recorded for.
type Role int

const (
	RoleSuggested Role = iota
	RoleSelected
)

// slot is the landing line of a list and the last line a row can occupy.
type slot struct {
	pos  Position
	last int
}

type anchorKey struct {
	tag  string
	role Role
}

// Registry records where rows were laid out, keyed by tag identity, plus the
// landing slot at the end of each list. Tags with identical text share one
// anchor; the last recorded position wins.
type Registry struct {
	anchors map[anchorKey]Position
	slots   map[Role]slot
}

func NewRegistry() *Registry {
	return &Registry{
		anchors: make(map[anchorKey]Position),
		slots:   make(map[Role]slot),
	}
}

// Record stores the position of tag's row in the given list.
func (r *Registry) Record(tag string, role Role, p Position) {
	r.anchors[anchorKey{tag, role}] = p
}

// RecordSlot stores where the next row appended to a list would appear and
// the last visible line of that list.
func (r *Registry) RecordSlot(role Role, p Position, last int) {
	r.slots[role] = slot{pos: p, last: max(last, p.Y)}
}

func (r *Registry) Anchor(tag string, role Role) (Position, bool) {
	p, ok := r.anchors[anchorKey{tag, role}]
	return p, ok
}

func (r *Registry) Slot(role Role) (Position, bool) {
	s, ok := r.slots[role]
	return s.pos, ok
}

// Reset drops every anchor. Layout calls it before re-recording so rows that
// left a list do not keep stale positions.
func (r *Registry) Reset() {
	clear(r.anchors)
	clear(r.slots)
}

// Travel computes the slide delta for tag leaving the list given by from: the
// row's own anchor is one end, the other list's landing slot the other.
// ahead counts slides already bound for that list; each pushes the landing
// line down by one, up to the list's last visible line.
func (r *Registry) Travel(tag string, from Role, ahead int) (delta int, ok bool) {
	start, ok := r.Anchor(tag, from)
	if !ok {
		return 0, false
	}
	to := RoleSelected
	dir := SuggestedToSelected
	if from == RoleSelected {
		to = RoleSuggested
		dir = SelectedToSuggested
	}
	dest, ok := r.slots[to]
	if !ok {
		return 0, false
	}
	end := min(dest.pos.Y+max(ahead, 0), dest.last)
	if dir == SuggestedToSelected {
		return Delta(dir, start.Y, end), true
	}
	return Delta(dir, end, start.Y), true
}
