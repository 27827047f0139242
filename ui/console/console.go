package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles bound to one writer's renderer, so colour is
// dropped for pipes, files and NO_COLOR.
type palette struct {
	header lipgloss.Style
	faint  lipgloss.Style
	done   lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		header: r.NewStyle().Foreground(lipgloss.Color("6")),
		faint:  r.NewStyle().Foreground(lipgloss.Color("8")),
		done:   r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Snapshot is a plain copy of both tag lists.
type Snapshot struct {
	Selected  []string
	Suggested []string
	Rotated   func(string) bool
}

// Print renders the tag lists to the writer in a compact format.
func Print(w io.Writer, s Snapshot) {
	p := newPalette(w)
	fmt.Fprintln(w, p.header.Render("■ TAGPICKER"))

	printSection(w, p, "Selected Tags", s.Selected, s.Rotated)
	printSection(w, p, "Suggested Tags", s.Suggested, s.Rotated)

	fmt.Fprintf(w, "%s: %d selected | %d suggested\n\n", p.header.Render("─ Summary"), len(s.Selected), len(s.Suggested))
}

func printSection(w io.Writer, p palette, title string, items []string, rotated func(string) bool) {
	fmt.Fprintln(w, p.header.Render("─ "+title))
	if len(items) == 0 {
		fmt.Fprintf(w, "  %s\n", p.faint.Render("(none)"))
		return
	}
	for i, tag := range items {
		label := tag
		if len([]rune(label)) > 20 {
			label = string([]rune(label)[:17]) + "..."
		}
		dots := strings.Repeat("·", 22-len([]rune(label)))
		fmt.Fprintf(w, "  %2d. %s%s %s\n", i+1, label, p.faint.Render(dots), marker(p, tag, rotated))
	}
}

func marker(p palette, tag string, rotated func(string) bool) string {
	if rotated != nil && rotated(tag) {
		return p.done.Render("×")
	}
	return "+"
}
