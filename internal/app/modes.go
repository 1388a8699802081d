package app

import (
	"github.com/llehouerou/carousel/internal/carousel"
)

// ModePreset is one stop of the mode cycle.
type ModePreset struct {
	Name     string
	Kind     carousel.Kind
	Vertical bool
}

// Presets lists the layout modes in cycle order.
var Presets = []ModePreset{
	{"horizontal", carousel.KindDefault, false},
	{"parallax", carousel.KindParallax, false},
	{"stack", carousel.KindStack, false},
	{"vertical", carousel.KindDefault, true},
	{"vertical-parallax", carousel.KindParallax, true},
}

// presetIndex returns the preset matching kind and axis.
func presetIndex(kind carousel.Kind, vertical bool) int {
	for i, p := range Presets {
		if p.Kind == kind && p.Vertical == vertical {
			return i
		}
	}
	return 0
}

func presetByName(name string) (ModePreset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return ModePreset{}, false
}

// Mode builds the engine mode for p with a step of width x height points.
func (p ModePreset) Mode(width, height float64, stack carousel.StackAnimation) carousel.ModeConfig {
	switch {
	case p.Kind == carousel.KindStack:
		return carousel.StackMode{Width: width, Height: height, Animation: stack}
	case p.Vertical:
		return carousel.VerticalMode{Layout: p.Kind, Width: width, Height: height}
	default:
		return carousel.HorizontalMode{Layout: p.Kind, Width: width, Height: height}
	}
}
