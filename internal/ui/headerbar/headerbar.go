// Package headerbar renders the single header line above the carousel.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const appName = "carousel"

// Modes lists the layout names shown as tabs, in cycle order.
var Modes = []string{"default", "parallax", "stack"}

var (
	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// State is what the header shows.
type State struct {
	Mode     string // one of Modes
	Vertical bool
	AutoPlay bool
	Reverse  bool
}

// Render returns the header bar string for the given width.
func Render(s State, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	title := styles.ApplyBoldGradient(appName, t.Primary, t.Secondary)

	tabs := make([]string, 0, len(Modes))
	for _, mode := range Modes {
		if mode == s.Mode {
			tabs = append(tabs, activeStyle.Render(mode))
		} else {
			tabs = append(tabs, inactiveStyle.Render(mode))
		}
	}
	right := strings.Join(tabs, separatorStyle.Render(" │ "))

	axis := "↔"
	if s.Vertical {
		axis = "↕"
	}
	right += separatorStyle.Render(" │ ") + inactiveStyle.Render(axis)

	if s.AutoPlay {
		arrow := "▶"
		if s.Reverse {
			arrow = "◀"
		}
		right += " " + t.S().Success.Render(arrow)
	}

	return render.Row(" "+title, right+" ", width)
}
