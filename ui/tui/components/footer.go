package components

import (
	"tagpicker/ui/tui/styles"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Footer shows the key bindings at the bottom of the screen.
type Footer struct {
	Help  help.Model
	Keys  help.KeyMap
	Width int
}

func NewFooter(keys help.KeyMap) *Footer {
	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(styles.Highlight)
	h.Styles.FullKey = h.Styles.FullKey.Foreground(styles.Highlight)
	return &Footer{Help: h, Keys: keys}
}

func (f *Footer) Init() tea.Cmd {
	return nil
}

func (f *Footer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		f.Resize(msg.Width)
	}
	return f, nil
}

func (f *Footer) Resize(w int) {
	f.Width = w
	f.Help.Width = max(0, w-2)
}

// ToggleFull switches between the one-line and the full help.
func (f *Footer) ToggleFull() {
	f.Help.ShowAll = !f.Help.ShowAll
}

func (f *Footer) View() string {
	return styles.FooterStyle.Render(f.Help.View(f.Keys))
}

// Lines is the rendered height of the footer.
func (f *Footer) Lines() int {
	return lipgloss.Height(f.View())
}
