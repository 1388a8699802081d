package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/ui/headerbar"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	e := m.Carousel.Engine()
	cfg := e.Config()
	header := headerbar.Render(headerbar.State{
		Mode:     cfg.Mode.Kind().String(),
		Vertical: cfg.Mode.Vertical(),
		AutoPlay: e.AutoPlaying(),
		Reverse:  cfg.AutoPlay.Reverse,
	}, m.Width)
	if header == "" {
		header = render.EmptyLine(m.Width)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	if body := m.Carousel.View(); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())

	return m.Popups.RenderOverlay(b.String())
}

func (m Model) statusLine() string {
	if m.notification != nil {
		msg := render.Truncate(" "+m.notification.Message, m.Width)
		return styles.T().S().Warning.Render(msg)
	}
	return m.Carousel.Status(m.Width, m.visitNote())
}

// visitNote describes how often the current item was visited.
func (m Model) visitNote() string {
	if !m.hasVisits || m.visits.Index != m.Carousel.Engine().CurrentIndex() || m.visits.Count == 0 {
		return ""
	}
	note := fmt.Sprintf("seen %s", times(m.visits.Count))
	if m.visits.First != nil {
		note += ", first " + humanize.Time(*m.visits.First)
	}
	return note
}

func times(n int) string {
	switch n {
	case 1:
		return "once"
	case 2:
		return "twice"
	default:
		return humanize.Comma(int64(n)) + " times"
	}
}
