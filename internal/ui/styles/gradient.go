package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	colors := Palette(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(colors[i]).Bold(true).Render(cluster))
	}
	return b.String()
}

// Palette returns size colors blended from from to to in HCL space, which
// keeps perceived brightness even across the range.
func Palette(size int, from, to lipgloss.Color) []lipgloss.Color {
	if size <= 0 {
		return nil
	}
	if size == 1 {
		return []lipgloss.Color{from}
	}

	c1 := toColorful(from)
	c2 := toColorful(to)

	colors := make([]lipgloss.Color, size)
	colors[0], colors[size-1] = from, to
	for i := 1; i < size-1; i++ {
		t := float64(i) / float64(size-1)
		colors[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	return colors
}

// Fade blends c toward bg. opacity 1 returns c, 0 returns bg.
func Fade(c, bg lipgloss.Color, opacity float64) lipgloss.Color {
	switch {
	case opacity >= 1:
		return c
	case opacity <= 0:
		return bg
	}
	from := toColorful(bg)
	return lipgloss.Color(from.BlendLab(toColorful(c), opacity).Clamped().Hex())
}

// toColorful converts a hex lipgloss.Color. ANSI palette colors have no
// fixed RGB value and fall back to a neutral gray.
func toColorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	col, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return col
}
