package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCenter(t *testing.T) {
	got := Center("ab\ncd", 6, 4)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 3)
	assert.Empty(t, lines[0])
	assert.Equal(t, "  ab", lines[1])
	assert.Equal(t, "  cd", lines[2])
}

func TestCalculateDimensions(t *testing.T) {
	w, h := calculateDimensions("hello\nworld", 80, 24, SizeAuto)
	assert.Equal(t, 11, w)
	assert.Equal(t, 6, h)

	w, _ = calculateDimensions(strings.Repeat("x", 100), 40, 24, SizeAuto)
	assert.Equal(t, 36, w)

	w, h = calculateDimensions("x", 100, 50, SizeConfig{WidthPct: 50, HeightPct: 20})
	assert.Equal(t, 50, w)
	assert.Equal(t, 10, h)
}

func TestRenderBordered_ContainsContent(t *testing.T) {
	out := RenderBordered("Go to item", 60, 20, SizeAuto)
	assert.Contains(t, ansi.Strip(out), "Go to item")
}
