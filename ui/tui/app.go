package tui

import (
	"cmp"
	"log/slog"
	"slices"
	"time"

	"tagpicker/internal/anim"
	"tagpicker/internal/config"
	"tagpicker/internal/tags"
	"tagpicker/ui/tui/components"
	"tagpicker/ui/tui/state"
	"tagpicker/ui/tui/views"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

var lists = []tags.List{tags.Selected, tags.Suggested}

// maxFrameLag caps how many nominal frames one late frame may advance.
const maxFrameLag = 6

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	cfg      *config.Config
	store    *tags.Store
	registry *anim.Registry
	zones    *zone.Manager
	keys     keyMap
	footer   *components.Footer
	widgets  []components.Component
	logger   *slog.Logger

	state     state.ScreenState
	layout    views.Layout
	cursor    anim.Cursor // physics-driven highlight of the focused row
	flights   map[tags.Tag]*flight
	launched  int
	rotations map[tags.Tag]*anim.Rotation
	frame     time.Duration
	lastFrame time.Time

	seeded      bool
	ticking     bool
	dirty       bool
	quitting    bool
	unsubscribe func()
	width       int
	height      int
}

// flight is a row sliding out of its list. When the slide ends the store
// moves the tag.
type flight struct {
	slide  *anim.Slide
	from   tags.List
	origin anim.Position
	seq    int
}

// Messages
type FrameMsg time.Time

func InitialModel(cfg *config.Config, store *tags.Store) *MainModel {
	if cfg == nil {
		cfg = config.Default()
	}
	keys := defaultKeyMap()
	footer := components.NewFooter(keys)
	m := &MainModel{
		cfg:       cfg,
		store:     store,
		registry:  anim.NewRegistry(),
		zones:     zone.New(),
		keys:      keys,
		footer:    footer,
		widgets:   []components.Component{footer},
		logger:    slog.Default().With("component", "tui"),
		cursor:    anim.NewCursor(cfg.Animation.FPS),
		flights:   make(map[tags.Tag]*flight),
		rotations: make(map[tags.Tag]*anim.Rotation),
		frame:     anim.FrameInterval(cfg.Animation.FPS),
		state:     state.ScreenState{Focus: tags.Suggested},
		dirty:     true,
	}
	m.unsubscribe = store.Subscribe(func(c tags.Change) {
		m.dirty = true
		m.logger.Debug("store changed", "kind", c.Kind, "tag", c.Tag, "to", c.To)
	})
	m.relayout()
	return m
}

// Init seeds the suggested list the first time the screen starts.
func (m *MainModel) Init() tea.Cmd {
	if !m.seeded {
		m.seeded = true
		m.store.InitializeSuggested()
		m.relayout()
	}
	cmds := make([]tea.Cmd, 0, len(m.widgets))
	for _, w := range m.widgets {
		cmds = append(cmds, w.Init())
	}
	return tea.Batch(cmds...)
}

// Close releases the zone manager and detaches from the store.
func (m *MainModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.zones.Close()
}

// Commands
func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m *MainModel) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	m.lastFrame = time.Time{}
	return frameCmd(m.frame)
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case FrameMsg:
		return m.handleFrameMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.footer.ToggleFull()
		m.relayout()
		return m, nil

	case key.Matches(msg, m.keys.Switch):
		m.focus(m.state.Focus.Other())
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m, m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		return m, m.moveCursor(1)

	case key.Matches(msg, m.keys.Toggle):
		return m, m.tap(m.state.Focus, m.state.Cursor[m.state.Focus])
	}
	return m, nil
}

func (m *MainModel) handleFrameMsg(msg FrameMsg) (tea.Model, tea.Cmd) {
	dt := m.elapsed(time.Time(msg))
	// Flights land in tap order.
	for _, f := range m.inFlight() {
		f.slide.Step(dt)
	}
	for _, r := range m.rotations {
		r.Step(dt)
	}
	m.cursor.Update(m.state.Cursor[m.state.Focus])

	if m.dirty {
		m.relayout()
	}
	if m.animating() {
		return m, frameCmd(m.frame)
	}
	m.ticking = false
	return m, nil
}

// elapsed is the real time since the previous frame, capped at maxFrameLag
// frames. The first frame of a run counts as one nominal frame.
func (m *MainModel) elapsed(now time.Time) time.Duration {
	dt := m.frame
	if !m.lastFrame.IsZero() {
		dt = min(max(now.Sub(m.lastFrame), 0), maxFrameLag*m.frame)
	}
	m.lastFrame = now
	return dt
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	for _, w := range m.widgets {
		w.Resize(msg.Width)
	}
	m.relayout()
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if list, ok := m.panelAt(msg.Y); ok {
			m.focus(list)
			return m, m.moveCursor(-1)
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if list, ok := m.panelAt(msg.Y); ok {
			m.focus(list)
			return m, m.moveCursor(1)
		}
	case msg.Action == tea.MouseActionRelease:
		for _, list := range lists {
			for _, row := range m.layout.Panel(list).Rows {
				z := m.zones.Get(views.RowZoneID(list, row.Index))
				if z == nil || !z.InBounds(msg) {
					continue
				}
				m.state.Cursor[list] = row.Index
				m.focus(list)
				m.cursor.Snap(row.Index)
				return m, m.tap(list, row.Index)
			}
		}
	}
	return m, nil
}

// tap starts sliding the tag at index out of list. The store is only
// mutated once the slide has finished.
func (m *MainModel) tap(list tags.List, index int) tea.Cmd {
	items := m.state.Tags(list)
	if index < 0 || index >= len(items) {
		return nil
	}
	tag := items[index]
	if _, busy := m.flights[tag]; busy {
		return nil
	}

	role := views.RoleFor(list)
	origin, ok := m.registry.Anchor(tag, role)
	if !ok {
		return nil
	}
	delta, ok := m.registry.Travel(tag, role, m.inbound(list.Other()))
	if !ok {
		return nil
	}

	dir := anim.SuggestedToSelected
	if list == tags.Selected {
		dir = anim.SelectedToSuggested
	}
	slide := anim.NewSlide(tag, dir, delta, m.cfg.Animation.SlideDuration).
		Then(func() { m.land(tag, list) })
	m.launched++
	m.flights[tag] = &flight{slide: slide, from: list, origin: origin, seq: m.launched}

	m.rotation(tag).Start()
	m.store.MarkRotated(tag)

	m.logger.Debug("slide started", "tag", tag, "direction", dir.String(), "delta", delta)
	return m.startTicking()
}

func (m *MainModel) inFlight() []*flight {
	out := make([]*flight, 0, len(m.flights))
	for _, f := range m.flights {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b *flight) int {
		return cmp.Compare(a.seq, b.seq)
	})
	return out
}

// inbound counts slides on their way into list.
func (m *MainModel) inbound(list tags.List) int {
	n := 0
	for _, f := range m.flights {
		if f.from.Other() == list {
			n++
		}
	}
	return n
}

func (m *MainModel) land(tag tags.Tag, from tags.List) {
	delete(m.flights, tag)
	m.store.Move(tag, from)
	m.logger.Debug("slide finished", "tag", tag, "from", from.String())
}

func (m *MainModel) rotation(tag tags.Tag) *anim.Rotation {
	r, ok := m.rotations[tag]
	if ok {
		return r
	}
	if m.store.Rotated(tag) {
		r = anim.NewRotated(m.cfg.Animation.RotateAngle)
	} else {
		r = anim.NewRotation(m.cfg.Animation.RotateAngle, m.cfg.Animation.RotateDuration)
	}
	m.rotations[tag] = r
	return r
}

// angle is the current icon angle of tag.
func (m *MainModel) angle(tag tags.Tag) float64 {
	if r, ok := m.rotations[tag]; ok {
		return r.Angle()
	}
	if m.store.Rotated(tag) {
		return m.cfg.Animation.RotateAngle
	}
	return 0
}

func (m *MainModel) animating() bool {
	if len(m.flights) > 0 {
		return true
	}
	for _, r := range m.rotations {
		if !r.Settled() {
			return true
		}
	}
	return !m.cursor.Settled(m.state.Cursor[m.state.Focus])
}

func (m *MainModel) focus(list tags.List) {
	if m.state.Focus == list {
		return
	}
	m.state.Focus = list
	m.cursor.Snap(m.state.Cursor[list])
}

func (m *MainModel) moveCursor(step int) tea.Cmd {
	f := m.state.Focus
	next := m.state.Cursor[f] + step
	if next < 0 || next >= len(m.state.Tags(f)) {
		return nil
	}
	m.state.Cursor[f] = next
	m.relayout()
	return m.startTicking()
}

func (m *MainModel) panelAt(y int) (tags.List, bool) {
	for _, list := range lists {
		p := m.layout.Panel(list)
		if y >= p.Top && y < p.Top+p.Height {
			return list, true
		}
	}
	return 0, false
}

// quit drops in-flight slides without landing them.
func (m *MainModel) quit() {
	if n := len(m.flights); n > 0 {
		m.logger.Debug("discarding in-flight slides", "count", n)
	}
	clear(m.flights)
	m.quitting = true
}

// relayout refreshes the snapshot from the store, keeps cursors visible and
// records every row's position in the registry.
func (m *MainModel) relayout() {
	m.state.Suggested = m.store.Suggested()
	m.state.Selected = m.store.Selected()
	m.state.Clamp()

	footer := m.footer.Lines()
	l := views.ComputeLayout(m.width, m.height, footer, m.state)
	for _, list := range lists {
		m.state.EnsureVisible(list, l.Panel(list).Capacity)
	}
	m.layout = views.ComputeLayout(m.width, m.height, footer, m.state)
	m.layout.Record(m.registry)
	m.dirty = false
}

func (m *MainModel) flightViews() []views.Flight {
	out := make([]views.Flight, 0, len(m.flights))
	for tag, f := range m.flights {
		out = append(out, views.Flight{
			Tag:    tag,
			From:   f.from,
			Origin: f.origin,
			Offset: f.slide.Offset(),
		})
	}
	slices.SortFunc(out, func(a, b views.Flight) int {
		return cmp.Compare(a.Tag, b.Tag)
	})
	return out
}

func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}
	return views.RenderScreen(m.state, views.ViewProps{
		Layout:     m.layout,
		AnimCursor: m.cursor.Pos,
		Flights:    m.flightViews(),
		Angle:      m.angle,
		Footer:     m.footer.View(),
		Zones:      m.zones,
	})
}

func Start(cfg *config.Config, store *tags.Store) error {
	m := InitialModel(cfg, store)
	defer m.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
