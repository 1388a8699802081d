// Package layout provides pure functions for UI dimension calculations.
//
// The carousel engine works in points. A terminal cell is PointsPerColumn
// points wide and PointsPerRow points tall, roughly the pixel size of a cell,
// so engine constants such as the parallax offset keep their proportions.
package layout

import (
	"math"

	"github.com/llehouerou/carousel/internal/ui"
)

const (
	PointsPerColumn = 8
	PointsPerRow    = 16
)

// Card size bounds, in cells.
const (
	MinCardWidth  = 12
	MaxCardWidth  = 48
	MinCardHeight = 5
	MaxCardHeight = 16

	// CardGap separates neighbouring cards along the scroll axis.
	CardGapColumns = 2
	CardGapRows    = 1

	// minScaledSide keeps a shrunk card large enough to draw a border.
	minScaledSide = 3
)

// Card is a card size in cells.
type Card struct {
	Width  int
	Height int
}

// ViewHeight returns the rows available to cards.
func ViewHeight(windowHeight int) int {
	return max(windowHeight-ui.ChromeHeight, 0)
}

// CardSize picks the card size for a viewport of viewW x viewH cells.
func CardSize(viewW, viewH int) Card {
	return Card{
		Width:  clamp(viewW*2/5, MinCardWidth, MaxCardWidth),
		Height: clamp(viewH*3/5, MinCardHeight, MaxCardHeight),
	}
}

// Step returns the engine container size, in points, for one card step.
func Step(card Card, vertical bool) float64 {
	if vertical {
		return float64((card.Height + CardGapRows) * PointsPerRow)
	}
	return float64((card.Width + CardGapColumns) * PointsPerColumn)
}

// ContainerSize returns the width and height, in points, matching a
// card step on both axes.
func ContainerSize(card Card) (width, height float64) {
	return Step(card, false), Step(card, true)
}

// ToCells converts a translation in points to whole columns and rows.
func ToCells(x, y float64) (col, row int) {
	return int(math.Round(x / PointsPerColumn)), int(math.Round(y / PointsPerRow))
}

// ToPoints converts a translation in cells to points.
func ToPoints(col, row int) (x, y float64) {
	return float64(col * PointsPerColumn), float64(row * PointsPerRow)
}

// Scaled shrinks card by scale, never below a drawable size.
func Scaled(card Card, scale float64) Card {
	return Card{
		Width:  max(int(math.Round(float64(card.Width)*scale)), minScaledSide),
		Height: max(int(math.Round(float64(card.Height)*scale)), minScaledSide),
	}
}

// Origin returns the top-left cell of card centred in a viewW x viewH view.
func Origin(viewW, viewH int, card Card) (col, row int) {
	return (viewW - card.Width) / 2, (viewH - card.Height) / 2
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
