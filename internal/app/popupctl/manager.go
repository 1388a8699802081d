// Package popupctl tracks the modal popups shown over the carousel and
// routes keys to the topmost one.
package popupctl

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/ui/confirm"
	"github.com/llehouerou/carousel/internal/ui/gotoprompt"
	"github.com/llehouerou/carousel/internal/ui/helpbindings"
	"github.com/llehouerou/carousel/internal/ui/overlay"
	"github.com/llehouerou/carousel/internal/ui/popup"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Manager manages all modal popups and overlays.
type Manager struct {
	popups   map[Type]popup.Popup
	sizes    map[Type]popup.SizeConfig
	errorMsg string
	width    int
	height   int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Help: {WidthPct: 60, HeightPct: 80, MaxWidth: 72},
		},
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(p.contentSize(p.sizes[t]))
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Help, GoTo, Confirm:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.contentSize(p.sizes[t]))
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
	case Error:
		p.errorMsg = ""
	case Help, GoTo, Confirm:
		delete(p.popups, t)
	}
}

// contentSize calculates popup content dimensions based on size config.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return p.width * size.WidthPct / 100, p.height * size.HeightPct / 100
	}
	// Auto-fit: give full screen size, popup decides
	return p.width, p.height
}

// ShowHelp displays the key binding help.
func (p *Manager) ShowHelp() tea.Cmd {
	help := helpbindings.New(helpbindings.Contexts)
	return p.Show(Help, &help)
}

// ShowGoTo asks for an item number out of itemCount, prefilled with current.
func (p *Manager) ShowGoTo(itemCount, current int) tea.Cmd {
	prompt := gotoprompt.New(itemCount, current)
	return p.Show(GoTo, &prompt)
}

// ShowConfirm asks a yes/no question. context comes back in the
// confirm.Result.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New(title, message, context)
	return p.Show(Confirm, &c)
}

// ShowError displays msg until the next key press.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	switch active {
	case None:
		return false, nil
	case Error:
		// Any key dismisses the error
		p.errorMsg = ""
		return true, nil
	}
	return true, p.route(active, msg)
}

// Update forwards a non-key message, such as a cursor blink, to the active
// popup.
func (p *Manager) Update(msg tea.Msg) tea.Cmd {
	active := p.ActivePopup()
	if active == None || active == Error {
		return nil
	}
	return p.route(active, msg)
}

func (p *Manager) route(t Type, msg tea.Msg) tea.Cmd {
	pop := p.popups[t]
	if pop == nil {
		return nil
	}
	updated, cmd := pop.Update(msg)
	p.popups[t] = updated
	return cmd
}

// RenderOverlay renders visible popups on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}

		var content string
		if t == Error {
			content = p.renderError()
		} else {
			content = p.popups[t].View()
		}
		rendered := popup.RenderBordered(content, p.width, p.height, p.sizes[t])
		base = overlay.Compose(base, rendered, p.width)
	}
	return base
}

func (p *Manager) renderError() string {
	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Error.Render("Error"))
	b.WriteString("\n\n")
	b.WriteString(s.Base.Render(p.errorMsg))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render("Press any key to dismiss"))
	return b.String()
}
