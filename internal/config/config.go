// Package config loads the carousel configuration from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/layout"
)

const (
	appName        = "carousel"
	configFileName = "config.toml"
	localFileName  = "carousel.toml"

	defaultItems = 8
)

type Config struct {
	Items        int      `koanf:"items"`
	Titles       []string `koanf:"titles"` // card labels; items defaults to their count
	Loop         *bool    `koanf:"loop"`   // default: true
	DefaultIndex int      `koanf:"default_index"`
	Mode         string   `koanf:"mode"` // "default", "parallax" or "stack"
	Vertical     bool     `koanf:"vertical"`
	Width        float64  `koanf:"width"`  // horizontal step in points, 0 fits the terminal
	Height       float64  `koanf:"height"` // vertical step in points, 0 fits the terminal
	WindowSize   int      `koanf:"window_size"`
	Paging       bool     `koanf:"paging"`
	Snap         *bool    `koanf:"snap"`    // default: true
	Persist      *bool    `koanf:"persist"` // keep preferences and visit history (default: true)

	Parallax  ParallaxConfig  `koanf:"parallax"`
	Stack     StackConfig     `koanf:"stack"`
	AutoPlay  AutoPlayConfig  `koanf:"autoplay"`
	Animation AnimationConfig `koanf:"animation"`
	Gesture   GestureConfig   `koanf:"gesture"`
}

// ParallaxConfig holds the parallax layout settings.
type ParallaxConfig struct {
	Offset *float64 `koanf:"offset"` // default: 100
	Scale  *float64 `koanf:"scale"`  // default: 0.8
}

// StackConfig holds the stack layout settings.
type StackConfig struct {
	Interval      *float64 `koanf:"interval"`       // default: 30
	ScaleInterval *float64 `koanf:"scale_interval"` // default: 0.08
	RotateZDeg    *float64 `koanf:"rotate_z_deg"`   // default: 135
	SnapDirection string   `koanf:"snap_direction"` // "left" or "right" (default)
	ShowLength    *int     `koanf:"show_length"`    // default: 3
	MoveSize      *float64 `koanf:"move_size"`      // points, default: the step length
}

// AutoPlayConfig holds the autoplay settings.
type AutoPlayConfig struct {
	Enabled    bool `koanf:"enabled"`
	Reverse    bool `koanf:"reverse"`
	IntervalMS int  `koanf:"interval_ms"` // default: 1000
}

// AnimationConfig holds the settle transition settings.
type AnimationConfig struct {
	DurationMS *int   `koanf:"duration_ms"` // default: 500, 0 disables animation
	Easing     string `koanf:"easing"`      // default: "out-quad"
}

// GestureConfig holds the release settings.
type GestureConfig struct {
	VelocityThreshold *float64 `koanf:"velocity_threshold"` // items per second, default: 0.5
}

// Load reads the user and local config files, then explicit when it is not
// empty. Later files override earlier ones. A missing explicit file is an
// error; missing default files are skipped.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(explicit), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", explicit, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/carousel/config.toml
	if xdg.ConfigHome != "" {
		paths = append(paths, filepath.Join(xdg.ConfigHome, appName, configFileName))
	}

	// 2. ./carousel.toml (pwd, highest priority among defaults)
	paths = append(paths, localFileName)

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ItemCount returns the number of cards to show.
func (c *Config) ItemCount() int {
	switch {
	case c.Items > 0:
		return c.Items
	case len(c.Titles) > 0:
		return len(c.Titles)
	default:
		return defaultItems
	}
}

// Title returns the label of item i.
func (c *Config) Title(i int) string {
	if i >= 0 && i < len(c.Titles) && c.Titles[i] != "" {
		return c.Titles[i]
	}
	return fmt.Sprintf("Item %d", i+1)
}

// LoopEnabled returns whether the carousel wraps around (default: true).
func (c *Config) LoopEnabled() bool {
	return c.Loop == nil || *c.Loop
}

// SnapEnabled returns whether releases snap with velocity (default: true).
func (c *Config) SnapEnabled() bool {
	return c.Snap == nil || *c.Snap
}

// PersistEnabled returns whether preferences and visits are kept (default: true).
func (c *Config) PersistEnabled() bool {
	return c.Persist == nil || *c.Persist
}

// ToCarousel builds an engine configuration. width and height are the card
// step used when the file leaves them unset.
func (c *Config) ToCarousel(width, height float64) (carousel.Config, error) {
	if c.Width > 0 {
		width = c.Width
	}
	if c.Height > 0 {
		height = c.Height
	}

	cfg := carousel.DefaultConfig()
	cfg.ItemCount = c.ItemCount()
	cfg.Loop = c.LoopEnabled()
	cfg.DefaultIndex = c.DefaultIndex
	cfg.WindowSize = c.WindowSize
	cfg.PagingEnabled = c.Paging
	cfg.EnableSnap = c.SnapEnabled()

	if c.Parallax.Offset != nil {
		cfg.Parallax.Offset = *c.Parallax.Offset
	}
	if c.Parallax.Scale != nil {
		cfg.Parallax.Scale = *c.Parallax.Scale
	}

	cfg.AutoPlay.Enabled = c.AutoPlay.Enabled
	cfg.AutoPlay.Reverse = c.AutoPlay.Reverse
	if c.AutoPlay.IntervalMS > 0 {
		cfg.AutoPlay.Interval = time.Duration(c.AutoPlay.IntervalMS) * time.Millisecond
	}

	if c.Animation.DurationMS != nil {
		cfg.Animation.Duration = time.Duration(*c.Animation.DurationMS) * time.Millisecond
	}
	if c.Animation.Easing != "" {
		cfg.Animation.Easing = carousel.Easing(c.Animation.Easing)
	}
	if c.Gesture.VelocityThreshold != nil {
		cfg.Snap.VelocityThreshold = *c.Gesture.VelocityThreshold
	}

	mode, err := c.mode(width, height)
	if err != nil {
		return carousel.Config{}, err
	}
	cfg.Mode = mode

	if err := cfg.Validate(); err != nil {
		return carousel.Config{}, err
	}
	return cfg, nil
}

func (c *Config) mode(width, height float64) (carousel.ModeConfig, error) {
	kind, err := carousel.ParseKind(c.Mode)
	if err != nil {
		return nil, err
	}

	switch {
	case kind == carousel.KindStack:
		if c.Vertical {
			return nil, fmt.Errorf("%w: stack mode is horizontal only", carousel.ErrInvalidConfig)
		}
		anim, err := c.StackAnimation()
		if err != nil {
			return nil, err
		}
		return carousel.StackMode{Width: width, Height: height, Animation: anim}, nil
	case c.Vertical:
		return carousel.VerticalMode{Layout: kind, Width: width, Height: height}, nil
	default:
		return carousel.HorizontalMode{Layout: kind, Width: width, Height: height}, nil
	}
}

// StackAnimation returns the stack layout settings with defaults applied.
func (c *Config) StackAnimation() (carousel.StackAnimation, error) {
	a := carousel.DefaultStackAnimation()
	s := c.Stack
	if s.Interval != nil {
		a.StackInterval = *s.Interval
	}
	if s.ScaleInterval != nil {
		a.ScaleInterval = *s.ScaleInterval
	}
	if s.RotateZDeg != nil {
		a.RotateZDeg = *s.RotateZDeg
	}
	if s.ShowLength != nil {
		a.ShowLength = *s.ShowLength
	}
	if s.MoveSize != nil {
		a.MoveSize = *s.MoveSize
	}
	dir, err := layout.ParseDirection(s.SnapDirection)
	if err != nil {
		return a, fmt.Errorf("%w: %w", carousel.ErrInvalidConfig, err)
	}
	a.SnapDirection = dir
	return a, nil
}
