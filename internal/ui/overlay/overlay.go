// Package overlay composes ANSI-styled text blocks on top of each other.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Non-space characters in overlay replace the base at the same position.
// This function is ANSI-aware and handles styled text correctly.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := len(plain) - len(strings.TrimLeft(plain, " "))
		trimmed := strings.TrimRight(plain, " ")
		endCol := startCol + ansi.StringWidth(trimmed[startCol:])

		baseLines[i] = splice(baseLines[i], ansi.Cut(overlayLine, startCol, endCol), startCol, endCol, width)
	}

	return strings.Join(baseLines, "\n")
}

// Place draws block over base with its top-left corner at col, row. Unlike
// Compose every cell of the block is opaque, spaces included. Parts of the
// block outside the width x len(lines) canvas are clipped.
func Place(base, block string, col, row, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(block, "\n") {
		y := row + i
		if y < 0 || y >= len(baseLines) {
			continue
		}

		lineWidth := ansi.StringWidth(line)
		start, end := col, col+lineWidth
		if start >= width || end <= 0 {
			continue
		}
		left, right := 0, lineWidth
		if start < 0 {
			left, start = -start, 0
		}
		if end > width {
			right, end = lineWidth-(end-width), width
		}
		if left > 0 || right < lineWidth {
			line = ansi.Cut(line, left, right)
		}

		baseLines[y] = splice(baseLines[y], line, start, end, width)
	}

	return strings.Join(baseLines, "\n")
}

// splice replaces columns [start, end) of baseLine with content.
func splice(baseLine, content string, start, end, width int) string {
	if w := ansi.StringWidth(baseLine); w < width {
		baseLine += strings.Repeat(" ", width-w)
	}

	// A wide character cut in half leaves the prefix short.
	prefix := ansi.Cut(baseLine, 0, start)
	if pw := ansi.StringWidth(prefix); pw < start {
		prefix += strings.Repeat(" ", start-pw)
	}

	result := prefix + content
	if end < width {
		suffix := ansi.Cut(baseLine, end, width)
		if sw := ansi.StringWidth(suffix); sw < width-end {
			result += strings.Repeat(" ", width-end-sw)
		}
		result += suffix
	}
	return result
}
