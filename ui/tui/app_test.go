package tui

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"tagpicker/internal/config"
	"tagpicker/internal/tags"
	"tagpicker/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) (*MainModel, *tags.Store) {
	t.Helper()
	store := tags.NewStore(nil)
	m := InitialModel(config.Default(), store)
	t.Cleanup(m.Close)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, store
}

func press(m *MainModel, msg tea.KeyMsg) *MainModel {
	updated, _ := m.Update(msg)
	return updated.(*MainModel)
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

// tick delivers a frame exactly one nominal interval after the previous one.
func tick(m *MainModel) tea.Cmd {
	at := m.lastFrame
	if at.IsZero() {
		at = time.Now()
	}
	_, cmd := m.Update(FrameMsg(at.Add(m.frame)))
	return cmd
}

// settle feeds frames until the frame loop stops on its own.
func settle(t *testing.T, m *MainModel) int {
	t.Helper()
	for i := 1; i <= 600; i++ {
		if tick(m) == nil {
			return i
		}
	}
	t.Fatal("Frame loop never stopped")
	return 0
}

func TestInitSeedsSuggestedOnce(t *testing.T) {
	m, store := newTestModel(t)
	m.Init()

	want := []string{"Android", "Website", "AI/ML", "Cyber Security"}
	if got := store.Suggested(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected seed %v, got %v", want, got)
	}
	if len(m.state.Suggested) != 4 || len(m.state.Selected) != 0 {
		t.Errorf("Expected snapshot 4/0, got %d/%d", len(m.state.Suggested), len(m.state.Selected))
	}
}

func TestCursorNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	if m.state.Focus != tags.Suggested {
		t.Fatalf("Expected initial focus on suggested, got %v", m.state.Focus)
	}
	m = press(m, keyDown)
	if m.state.Cursor[tags.Suggested] != 1 {
		t.Errorf("Expected cursor 1 after Down key, got %d", m.state.Cursor[tags.Suggested])
	}
	m = press(m, keyUp)
	m = press(m, keyUp)
	if m.state.Cursor[tags.Suggested] != 0 {
		t.Errorf("Expected cursor to stop at 0, got %d", m.state.Cursor[tags.Suggested])
	}
	m = press(m, keyTab)
	if m.state.Focus != tags.Selected {
		t.Errorf("Expected tab to focus selected, got %v", m.state.Focus)
	}
}

func TestCursorSpringFollows(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, keyDown)

	tick(m)
	if m.cursor.Pos <= 0 || m.cursor.Pos >= 1 {
		t.Errorf("Expected animated cursor between rows, got %f", m.cursor.Pos)
	}
	settle(t, m)
	if !m.cursor.Settled(1) {
		t.Errorf("Expected animated cursor to rest on 1, got %f", m.cursor.Pos)
	}
}

func TestTapSlidesBeforeMoving(t *testing.T) {
	m, store := newTestModel(t)

	start := m.layout.Panel(tags.Suggested).Rows[0].Pos.Y
	target := m.layout.Panel(tags.Selected).Slot.Y
	want := target - start

	_, cmd := m.Update(keyEnter)
	if cmd == nil {
		t.Fatal("Expected tap to start the frame loop")
	}
	f, ok := m.flights["Android"]
	if !ok {
		t.Fatal("Expected Android to be in flight")
	}
	if f.slide.Offset() != 0 {
		t.Errorf("Expected offset to start at 0, got %d", f.slide.Offset())
	}
	if f.slide.Target() != want {
		t.Errorf("Expected slide target %d, got %d", want, f.slide.Target())
	}

	for i := 0; i < 600 && len(m.flights) > 0; i++ {
		if !store.Contains(tags.Suggested, "Android") || store.Contains(tags.Selected, "Android") {
			t.Fatalf("Store mutated before the slide finished (frame %d)", i)
		}
		if off := f.slide.Offset(); off > 0 || off < want {
			t.Fatalf("Offset %d outside [%d, 0]", off, want)
		}
		tick(m)
	}

	if got := store.Selected(); len(got) != 1 || got[0] != "Android" {
		t.Errorf("Expected selected [Android], got %v", got)
	}
	if store.Contains(tags.Suggested, "Android") {
		t.Error("Expected Android removed from suggested")
	}
	if m.state.Selected[0] != "Android" {
		t.Errorf("Expected view snapshot to follow the store, got %v", m.state.Selected)
	}
}

func TestRotationIsOneWay(t *testing.T) {
	m, store := newTestModel(t)

	if m.angle("Android") != 0 {
		t.Fatalf("Expected unrotated icon, got %f", m.angle("Android"))
	}
	m = press(m, keyEnter)
	settle(t, m)
	if a := m.angle("Android"); a != 45 {
		t.Errorf("Expected 45 after first selection, got %f", a)
	}

	// Deselect from the selected list.
	m = press(m, keyTab)
	m = press(m, keyEnter)
	settle(t, m)
	if !store.Contains(tags.Suggested, "Android") {
		t.Fatal("Expected Android back in suggested")
	}
	if a := m.angle("Android"); a != 45 {
		t.Errorf("Expected 45 after deselect, got %f", a)
	}

	// Reselect: Android is now last in suggested.
	m = press(m, keyTab)
	m.state.Cursor[tags.Suggested] = len(m.state.Suggested) - 1
	m = press(m, keyEnter)
	settle(t, m)
	if a := m.angle("Android"); a != 45 {
		t.Errorf("Expected 45 after reselect, got %f", a)
	}
	if !store.Rotated("Android") {
		t.Error("Expected rotation flag kept in the store")
	}
}

func TestTapIgnoredWhileSliding(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, keyEnter)
	_, cmd := m.Update(keyEnter)
	if cmd != nil {
		t.Error("Expected second tap on a sliding tag to be ignored")
	}
	settle(t, m)

	if got := store.Selected(); len(got) != 1 {
		t.Errorf("Expected a single selected entry, got %v", got)
	}
}

func TestConcurrentSlides(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, keyEnter)
	m = press(m, keyDown)
	m = press(m, keyEnter)
	if len(m.flights) != 2 {
		t.Fatalf("Expected two flights, got %d", len(m.flights))
	}
	settle(t, m)

	if got := store.Selected(); len(got) != 2 {
		t.Errorf("Expected two selected tags, got %v", got)
	}
}

func TestConcurrentSlidesLandOnSeparateLines(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, keyEnter)
	m = press(m, keyDown)
	m = press(m, keyEnter)

	end := func(tag tags.Tag) int {
		f, ok := m.flights[tag]
		if !ok {
			t.Fatalf("Expected %s in flight", tag)
		}
		return f.origin.Y + f.slide.Target()
	}
	slot := m.layout.Panel(tags.Selected).Slot.Y
	if got := end("Android"); got != slot {
		t.Errorf("Expected Android to land on line %d, got %d", slot, got)
	}
	if got := end("Website"); got != slot+1 {
		t.Errorf("Expected Website to land on line %d, got %d", slot+1, got)
	}

	settle(t, m)
	rows := m.layout.Panel(tags.Selected).Rows
	if len(rows) != 2 || rows[0].Pos.Y != slot || rows[1].Pos.Y != slot+1 {
		t.Errorf("Expected rows at rest on lines %d and %d, got %+v", slot, slot+1, rows)
	}
	if got := store.Selected(); strings.Join(got, ",") != "Android,Website" {
		t.Errorf("Expected selected in tap order, got %v", got)
	}
}

func TestTapWhileDestinationScrolled(t *testing.T) {
	seed := make([]tags.Tag, 0, 12)
	for i := range 12 {
		seed = append(seed, fmt.Sprintf("tag-%02d", i))
	}
	store := tags.NewStore(seed)
	m := InitialModel(config.Default(), store)
	t.Cleanup(m.Close)
	m.Init()
	for _, tag := range seed[:10] {
		store.Select(tag)
	}
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	// Scroll the selected panel to its last row.
	m = press(m, keyTab)
	for range 9 {
		m = press(m, keyDown)
	}
	sel := m.layout.Panel(tags.Selected)
	if m.state.Scroll[tags.Selected] == 0 {
		t.Fatalf("Expected selected panel scrolled, cursor %d capacity %d", m.state.Cursor[tags.Selected], sel.Capacity)
	}
	m = press(m, keyTab)
	m = press(m, keyEnter)

	f, ok := m.flights["tag-10"]
	if !ok {
		t.Fatal("Expected tag-10 in flight")
	}
	last := sel.BodyTop + sel.Capacity - 1
	if got := f.origin.Y + f.slide.Target(); got != last {
		t.Errorf("Expected landing on last visible line %d, got %d", last, got)
	}

	settle(t, m)
	if got := store.Selected(); got[len(got)-1] != "tag-10" {
		t.Errorf("Expected tag-10 appended to selected, got %v", got)
	}
}

func TestLateFrameAdvancesByElapsedTime(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, keyEnter)
	f := m.flights["Android"]
	target := float64(f.slide.Target())
	slide := m.cfg.Animation.SlideDuration

	base := time.Now()
	m.Update(FrameMsg(base))
	m.Update(FrameMsg(base.Add(50 * time.Millisecond)))
	want := target * float64(m.frame+50*time.Millisecond) / float64(slide)
	if got := f.slide.RawOffset(); math.Abs(got-want) > 1e-6 {
		t.Errorf("Expected offset %f after a 50ms frame, got %f", want, got)
	}

	// A stalled frame only counts for maxFrameLag frames.
	m.Update(FrameMsg(base.Add(50*time.Millisecond + 10*time.Second)))
	want = target * float64(m.frame+50*time.Millisecond+maxFrameLag*m.frame) / float64(slide)
	if got := f.slide.RawOffset(); math.Abs(got-want) > 1e-6 {
		t.Errorf("Expected stall capped to offset %f, got %f", want, got)
	}
}

func TestQuitDiscardsFlights(t *testing.T) {
	m, store := newTestModel(t)

	m = press(m, keyEnter)
	_, cmd := m.Update(keyQuit)
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if len(m.flights) != 0 {
		t.Errorf("Expected flights discarded, got %d", len(m.flights))
	}
	tick(m)
	if store.Len(tags.Selected) != 0 {
		t.Errorf("Expected no store mutation after quit, got %v", store.Selected())
	}
	if m.View() != "" {
		t.Error("Expected empty view after quit")
	}
}

func TestViewShowsPanelsAndFlight(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	for _, want := range []string{"Selected Tags", "Suggested Tags", "Android", "Cyber Security", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}

	m = press(m, keyEnter)
	for i := 0; i < 10; i++ {
		tick(m)
	}
	if out := m.View(); !strings.Contains(out, "Android") {
		t.Error("Expected sliding row to stay visible mid-flight")
	}
}

func TestHelpToggleResizesLayout(t *testing.T) {
	m, _ := newTestModel(t)
	if m.footer.Width != 80 || m.footer.Help.Width != 78 {
		t.Errorf("Expected footer sized to the window, got %d/%d", m.footer.Width, m.footer.Help.Width)
	}
	before := m.layout.Panel(tags.Suggested).Height

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.footer.Help.ShowAll {
		t.Fatal("Expected full help")
	}
	if after := m.layout.Panel(tags.Suggested).Height; after >= before {
		t.Errorf("Expected panels to shrink for full help, got %d -> %d", before, after)
	}
}

func TestMouseClickTapsRow(t *testing.T) {
	m, store := newTestModel(t)
	row := m.layout.Panel(tags.Suggested).Rows[1]
	id := views.RowZoneID(tags.Suggested, row.Index)

	deadline := time.Now().Add(2 * time.Second)
	for m.zones.Get(id) == nil {
		if time.Now().After(deadline) {
			t.Fatal("Zones were never recorded")
		}
		m.View()
		time.Sleep(10 * time.Millisecond)
	}

	m.Update(tea.MouseMsg{X: row.Pos.X + 2, Y: row.Pos.Y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if _, ok := m.flights[row.Tag]; !ok {
		t.Fatalf("Expected click to start a slide for %s", row.Tag)
	}
	settle(t, m)
	if !store.Contains(tags.Selected, row.Tag) {
		t.Errorf("Expected %s selected after click", row.Tag)
	}
}
