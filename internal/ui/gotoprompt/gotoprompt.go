// Package gotoprompt provides the popup asking which item to jump to.
package gotoprompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/popup"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model asks for a one-based item number.
type Model struct {
	ui.Base
	input     textinput.Model
	itemCount int
	err       string
}

// New creates a prompt for a carousel of itemCount items, prefilled with the
// current one-based position.
func New(itemCount, current int) Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d", itemCount)
	ti.CharLimit = 9
	ti.Width = 12
	ti.Prompt = "> "
	ti.SetValue(strconv.Itoa(current + 1))
	ti.CursorEnd()
	ti.Focus()
	return Model{input: ti, itemCount: itemCount}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return ActionMsg(Result{Canceled: true}) }
		case tea.KeyEnter:
			index, err := m.parse()
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			return m, func() tea.Msg { return ActionMsg(Result{Index: index}) }
		}
	}

	m.err = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) parse() (int, error) {
	text := strings.TrimSpace(m.input.Value())
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	if n < 1 || n > m.itemCount {
		return 0, fmt.Errorf("pick a number between 1 and %d", m.itemCount)
	}
	return n - 1, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	t := styles.T()
	var b strings.Builder
	b.WriteString(t.S().Active.Render("Go to item"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.err != "" {
		b.WriteString(t.S().Error.Render(m.err))
	} else {
		b.WriteString(t.S().Subtle.Render("Enter: go, Esc: cancel"))
	}
	return b.String()
}
