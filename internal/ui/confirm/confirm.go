// Package confirm provides a yes/no confirmation popup.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/popup"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model asks a yes/no question. Context is handed back untouched in the
// Result so one popup type can guard several operations.
type Model struct {
	ui.Base
	title   string
	message string
	context any
}

// New creates a confirmation popup.
func New(title, message string, context any) Model {
	return Model{title: title, message: message, context: context}
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

	var confirmed bool
	switch keyMsg.String() {
	case "enter", "y", "Y":
		confirmed = true
	case "esc", "n", "N":
	default:
		return m, nil
	}

	ctx := m.context
	return m, func() tea.Msg {
		return ActionMsg(Result{Confirmed: confirmed, Context: ctx})
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Warning.Bold(true).Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(s.Base.Render(m.message))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render("Enter/Y: confirm, Esc/N: cancel"))
	return b.String()
}
