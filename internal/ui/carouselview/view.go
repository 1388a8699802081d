package carouselview

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/layout"
	"github.com/llehouerou/carousel/internal/ui/overlay"
	"github.com/llehouerou/carousel/internal/ui/render"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// minVisibleOpacity hides cards too faded to read.
const minVisibleOpacity = 0.05

// View renders the visible cards, back to front.
func (m Model) View() string {
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return ""
	}

	lines := make([]string, h)
	for i := range lines {
		lines[i] = render.EmptyLine(w)
	}
	canvas := strings.Join(lines, "\n")

	count := m.engine.Config().ItemCount
	if count == 0 {
		msg := styles.T().S().Muted.Render(render.Center("No items", w))
		return overlay.Place(canvas, msg, 0, h/2, w)
	}

	items := m.engine.Items()
	accents := styles.Palette(count, styles.T().Primary, styles.T().Secondary)
	current := m.engine.CurrentIndex()

	for _, i := range drawOrder(items) {
		t := items[i].Transform
		card := layout.Scaled(m.card, t.Scale)
		col, row := layout.Origin(w, h, card)
		dx, dy := layout.ToCells(t.TranslateX, t.TranslateY)
		col += dx
		row += dy
		if col+card.Width <= 0 || col >= w || row+card.Height <= 0 || row >= h {
			continue
		}
		block := m.renderCard(i, count, card, t, i == current, accents[i])
		canvas = overlay.Place(canvas, block, col, row, w)
	}
	return canvas
}

// drawOrder returns the indices of drawable items sorted by ascending
// z-index. Items outside the window carry stale transforms and are skipped.
func drawOrder(items []carousel.Item) []int {
	order := make([]int, 0, len(items))
	for i, it := range items {
		if !it.InWindow || it.Transform.Opacity < minVisibleOpacity {
			continue
		}
		order = append(order, i)
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(items[a].Transform.ZIndex, items[b].Transform.ZIndex)
	})
	return order
}

func (m Model) renderCard(index, count int, card layout.Card, t carousel.Transform, focused bool, accent lipgloss.Color) string {
	th := styles.T()
	bg := styles.Fade(th.BgCard, th.BgBase, t.Opacity)
	border := th.Border
	if focused {
		border = th.BorderFocus
	}

	innerW := card.Width - ui.BorderWidth
	innerH := card.Height - ui.BorderHeight

	content := []struct {
		text string
		fg   lipgloss.Color
		bold bool
	}{
		{m.title(index), accent, true},
		{humanize.Ordinal(index+1) + " of " + humanize.Comma(int64(count)), th.FgMuted, false},
	}
	if deg := math.Round(t.RotateZDeg); deg != 0 {
		content = append(content, struct {
			text string
			fg   lipgloss.Color
			bold bool
		}{fmt.Sprintf("↻ %.0f°", deg), th.FgSubtle, false})
	}
	if len(content) > innerH {
		content = content[:innerH]
	}

	fill := lipgloss.NewStyle().Background(bg)
	body := make([]string, innerH)
	for r := range body {
		body[r] = fill.Render(render.EmptyLine(innerW))
	}
	top := (innerH - len(content)) / 2
	for j, c := range content {
		style := fill.Foreground(styles.Fade(c.fg, th.BgBase, t.Opacity)).Bold(c.bold)
		body[top+j] = style.Render(render.Center(c.text, innerW))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Fade(border, th.BgBase, t.Opacity)).
		BorderBackground(bg).
		Render(strings.Join(body, "\n"))
}

// Status renders the position line with key hints, width cells wide. note
// is appended after the position when not empty.
func (m Model) Status(width int, note string) string {
	s := m.engine.State()
	count := m.engine.Config().ItemCount

	left := " empty"
	if count > 0 {
		left = fmt.Sprintf(" %s of %s", humanize.Ordinal(s.CurrentIndex+1), humanize.Comma(int64(count)))
		if !s.AtRest() {
			left += styles.T().S().Subtle.Render(fmt.Sprintf("  %.2f", s.Progress))
		}
	}
	left = styles.T().S().Active.Render(left)
	if note != "" {
		left += styles.T().S().Muted.Render("  " + note)
	}
	return render.Row(left, m.ShortHelp()+" ", width)
}
