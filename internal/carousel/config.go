package carousel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/carousel/internal/layout"
)

var (
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid carousel configuration")

	// ErrNotAtRest is returned by reconfiguration while a gesture or a
	// transition is in progress.
	ErrNotAtRest = errors.New("carousel is not at rest")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Defaults.
const (
	DefaultAutoPlayInterval  = time.Second
	DefaultAnimationDuration = 500 * time.Millisecond
	DefaultVelocityThreshold = 0.5 // items per second
)

// Kind selects the layout strategy of a horizontal or vertical carousel.
type Kind int

const (
	KindDefault Kind = iota
	KindParallax
	KindStack
)

// String returns the kind name as used in configuration files.
func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindParallax:
		return "parallax"
	case KindStack:
		return "stack"
	default:
		return "unknown"
	}
}

// ParseKind parses "default", "parallax" or "stack". Empty means default.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return KindDefault, nil
	case "parallax":
		return KindParallax, nil
	case "stack":
		return KindStack, nil
	default:
		return KindDefault, invalidf("unknown mode %q", s)
	}
}

// ModeConfig is one of HorizontalMode, VerticalMode or StackMode.
// The set is closed: only this package can add variants.
type ModeConfig interface {
	Kind() Kind
	// ContainerSize is the length of one item step along the scroll axis.
	ContainerSize() float64
	Vertical() bool

	validate() error
	strategy(cfg Config) layout.Strategy
	withSize(width, height float64) ModeConfig
	dragFactor() float64
}

// HorizontalMode scrolls along X. Width is required.
type HorizontalMode struct {
	Layout Kind // KindDefault or KindParallax
	Width  float64
	Height float64
}

func (m HorizontalMode) Kind() Kind             { return m.Layout }
func (m HorizontalMode) ContainerSize() float64 { return m.Width }
func (HorizontalMode) Vertical() bool           { return false }
func (HorizontalMode) dragFactor() float64      { return -1 }

func (m HorizontalMode) validate() error {
	if m.Layout != KindDefault && m.Layout != KindParallax {
		return invalidf("horizontal mode cannot use %s layout", m.Layout)
	}
	if m.Width <= 0 {
		return invalidf("horizontal mode requires a positive width")
	}
	return nil
}

func (m HorizontalMode) strategy(cfg Config) layout.Strategy {
	return flatStrategy(m.Layout, false, cfg.Parallax)
}

func (m HorizontalMode) withSize(width, height float64) ModeConfig {
	m.Width, m.Height = width, height
	return m
}

// VerticalMode scrolls along Y. Height is required.
type VerticalMode struct {
	Layout Kind // KindDefault or KindParallax
	Height float64
	Width  float64
}

func (m VerticalMode) Kind() Kind             { return m.Layout }
func (m VerticalMode) ContainerSize() float64 { return m.Height }
func (VerticalMode) Vertical() bool           { return true }
func (VerticalMode) dragFactor() float64      { return -1 }

func (m VerticalMode) validate() error {
	if m.Layout != KindDefault && m.Layout != KindParallax {
		return invalidf("vertical mode cannot use %s layout", m.Layout)
	}
	if m.Height <= 0 {
		return invalidf("vertical mode requires a positive height")
	}
	return nil
}

func (m VerticalMode) strategy(cfg Config) layout.Strategy {
	return flatStrategy(m.Layout, true, cfg.Parallax)
}

func (m VerticalMode) withSize(width, height float64) ModeConfig {
	m.Width, m.Height = width, height
	return m
}

func flatStrategy(kind Kind, vertical bool, p ParallaxParams) layout.Strategy {
	if kind == KindParallax {
		return layout.Parallax{Vertical: vertical, Offset: p.Offset, Scale: p.Scale}
	}
	return layout.Default{Vertical: vertical}
}

// StackAnimation configures the stack layout.
type StackAnimation struct {
	StackInterval float64
	ScaleInterval float64
	RotateZDeg    float64
	SnapDirection layout.Direction
	ShowLength    int
	MoveSize      float64 // distance a leaving item travels, 0 for the step length
}

// DefaultStackAnimation returns the stack defaults.
func DefaultStackAnimation() StackAnimation {
	return StackAnimation{
		StackInterval: layout.DefaultStackInterval,
		ScaleInterval: layout.DefaultScaleInterval,
		RotateZDeg:    layout.DefaultRotateZDeg,
		SnapDirection: layout.DirectionRight,
		ShowLength:    layout.DefaultShowLength,
	}
}

// StackMode piles items on top of each other. The step length is Width when
// set, otherwise Height.
type StackMode struct {
	Width     float64
	Height    float64
	Animation StackAnimation
}

func (StackMode) Kind() Kind     { return KindStack }
func (StackMode) Vertical() bool { return false }

func (m StackMode) ContainerSize() float64 {
	if m.Width > 0 {
		return m.Width
	}
	return m.Height
}

func (m StackMode) dragFactor() float64 {
	if m.Animation.SnapDirection == layout.DirectionLeft {
		return -1
	}
	return 1
}

func (m StackMode) validate() error {
	if m.ContainerSize() <= 0 {
		return invalidf("stack mode requires a positive width or height")
	}
	a := m.Animation
	if a.StackInterval < 0 {
		return invalidf("stack interval must not be negative")
	}
	if a.ScaleInterval < 0 || a.ScaleInterval >= 1 {
		return invalidf("stack scale interval must be in [0, 1)")
	}
	if a.ShowLength < 0 {
		return invalidf("stack show length must not be negative")
	}
	if a.MoveSize < 0 {
		return invalidf("stack move size must not be negative")
	}
	if a.SnapDirection != layout.DirectionLeft && a.SnapDirection != layout.DirectionRight {
		return invalidf("unknown stack snap direction %d", a.SnapDirection)
	}
	return nil
}

func (m StackMode) strategy(Config) layout.Strategy {
	a := m.Animation
	return layout.Stack{
		Interval:      a.StackInterval,
		ScaleInterval: a.ScaleInterval,
		RotateZDeg:    a.RotateZDeg,
		Direction:     a.SnapDirection,
		ShowLength:    a.ShowLength,
		MoveSize:      a.MoveSize,
	}
}

func (m StackMode) withSize(width, height float64) ModeConfig {
	m.Width, m.Height = width, height
	return m
}

// ParallaxParams configures the parallax layout.
type ParallaxParams struct {
	Offset float64
	Scale  float64 // (0, 1]
}

// AutoPlay configures timer-driven advancing.
type AutoPlay struct {
	Enabled  bool
	Reverse  bool
	Interval time.Duration // dwell time at rest between two advances
}

// Animation configures settle transitions.
type Animation struct {
	Duration time.Duration
	Easing   Easing
}

// Snap configures release-time snapping.
type Snap struct {
	// VelocityThreshold in items per second above which a release moves one
	// item in the direction of the fling.
	VelocityThreshold float64
}

// Config is the full engine configuration.
type Config struct {
	ItemCount     int
	Loop          bool
	DefaultIndex  int
	Mode          ModeConfig
	Parallax      ParallaxParams
	WindowSize    int // 0 means every item is recomputed each frame
	PagingEnabled bool
	EnableSnap    bool
	AutoPlay      AutoPlay
	Animation     Animation
	Snap          Snap
}

// DefaultConfig returns a configuration with every default applied. Mode is
// left nil and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		Loop: true,
		Parallax: ParallaxParams{
			Offset: layout.DefaultParallaxOffset,
			Scale:  layout.DefaultParallaxScale,
		},
		EnableSnap: true,
		AutoPlay:   AutoPlay{Interval: DefaultAutoPlayInterval},
		Animation: Animation{
			Duration: DefaultAnimationDuration,
			Easing:   EaseOutQuad,
		},
		Snap: Snap{VelocityThreshold: DefaultVelocityThreshold},
	}
}

// Validate reports the first incoherent setting.
func (c Config) Validate() error {
	if c.ItemCount < 0 {
		return invalidf("item count must not be negative, got %d", c.ItemCount)
	}
	if c.Mode == nil {
		return invalidf("a mode is required")
	}
	if err := c.Mode.validate(); err != nil {
		return err
	}
	if c.Mode.Kind() == KindParallax && (c.Parallax.Scale <= 0 || c.Parallax.Scale > 1) {
		return invalidf("parallax scale must be in (0, 1], got %v", c.Parallax.Scale)
	}
	if c.WindowSize < 0 {
		return invalidf("window size must not be negative, got %d", c.WindowSize)
	}
	if c.AutoPlay.Enabled && c.AutoPlay.Interval <= 0 {
		return invalidf("autoplay interval must be positive")
	}
	if c.Animation.Duration < 0 {
		return invalidf("animation duration must not be negative")
	}
	if _, ok := easings[c.Animation.Easing]; !ok {
		return invalidf("unknown easing %q", c.Animation.Easing)
	}
	if c.Snap.VelocityThreshold < 0 {
		return invalidf("velocity threshold must not be negative")
	}
	return nil
}
