// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/popup"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Contexts lists every binding context in display order.
var Contexts = []string{"carousel", "autoplay", "global"}

var categoryLabels = map[string]string{
	"global":   "Global",
	"carousel": "Carousel",
	"autoplay": "Autoplay",
}

// chromeHeight is the space taken by title, footer, border and padding.
const chromeHeight = 10

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New creates a help popup listing the given contexts.
func New(contexts []string) Model {
	return Model{lines: buildLines(contexts)}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	t := styles.T()
	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))

	var b strings.Builder
	b.WriteString(t.S().Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(m.lines[m.scrollOffset:end], "\n"))
	b.WriteString("\n\n")
	b.WriteString(t.S().Subtle.Render(m.footer()))
	return b.String()
}

func (m Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chromeHeight, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

func buildLines(contexts []string) []string {
	t := styles.T()
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	descStyle := t.S().Base

	keyWidth := 0
	for _, b := range keymap.Bindings {
		keyWidth = max(keyWidth, len(keyList(b)))
	}

	var lines []string
	for _, ctx := range contexts {
		bindings := keymap.ByContext(ctx)
		if len(bindings) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		label := categoryLabels[ctx]
		if label == "" {
			label = ctx
		}
		lines = append(lines,
			headerStyle.Render(label),
			t.S().Subtle.Render(strings.Repeat("─", keyWidth+20)))

		for _, b := range bindings {
			keys := keyList(b)
			padded := keys + strings.Repeat(" ", keyWidth-len(keys))
			lines = append(lines, t.S().Key.Render(padded)+"  "+descStyle.Render(b.Description))
		}
	}
	return lines
}

func keyList(b keymap.Binding) string {
	names := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		names[i] = keymap.DisplayKey(k)
	}
	return strings.Join(names, ", ")
}
