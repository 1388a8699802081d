// Package cli wires the command line to the carousel application.
package cli

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/llehouerou/carousel/internal/app"
	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/state"
)

// Version is set at build time via ldflags.
var Version = "dev"

type options struct {
	configPath string
	mode       string
	loop       bool
	autoplay   bool
	reverse    bool
	interval   time.Duration
	vertical   bool
	items      int
	titles     []string
	window     int
	logFile    string
	logLevel   string
	noState    bool
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "carousel",
		Short: "Browse cards in a terminal carousel",
		Long: `carousel shows a row of cards that scroll with the keyboard, the mouse
wheel or a mouse drag. Three layouts are available: default, parallax and
stack. The chosen layout and a history of visited cards are kept between
runs.

Settings are read from $XDG_CONFIG_HOME/carousel/config.toml, then from
./carousel.toml, then from --config. Flags override every file.

Example:
  carousel --items 12 --mode parallax
  carousel --title Alpha --title Beta --title Gamma --loop=false
  carousel --mode stack --autoplay --interval 2s`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("carousel version {{.Version}}\n")

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (TOML)")
	f.StringVarP(&opts.mode, "mode", "m", "", `layout: "default", "parallax" or "stack"`)
	f.BoolVar(&opts.loop, "loop", true, "wrap around at both ends")
	f.BoolVar(&opts.autoplay, "autoplay", false, "advance automatically")
	f.BoolVar(&opts.reverse, "reverse", false, "autoplay backwards")
	f.DurationVar(&opts.interval, "interval", time.Second, "autoplay interval")
	f.BoolVar(&opts.vertical, "vertical", false, "scroll vertically")
	f.IntVarP(&opts.items, "items", "n", 0, "number of cards")
	f.StringArrayVarP(&opts.titles, "title", "t", nil, "card title, repeatable")
	f.IntVar(&opts.window, "window", 0, "cards kept laid out around the current one (0: all)")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	f.BoolVar(&opts.noState, "no-state", false, "do not load or save preferences and visit history")

	return cmd, opts
}

// Execute runs the root command.
func Execute() error {
	cmd, _ := newRootCmd()
	return cmd.Execute()
}

// apply copies the flags set on the command line over cfg.
func (o *options) apply(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("mode") {
		cfg.Mode = o.mode
	}
	if flags.Changed("loop") {
		loop := o.loop
		cfg.Loop = &loop
	}
	if flags.Changed("autoplay") {
		cfg.AutoPlay.Enabled = o.autoplay
	}
	if flags.Changed("reverse") {
		cfg.AutoPlay.Reverse = o.reverse
	}
	if flags.Changed("interval") {
		cfg.AutoPlay.IntervalMS = int(o.interval / time.Millisecond)
	}
	if flags.Changed("vertical") {
		cfg.Vertical = o.vertical
	}
	if flags.Changed("items") {
		cfg.Items = o.items
	}
	if flags.Changed("title") {
		cfg.Titles = o.titles
	}
	if flags.Changed("window") {
		cfg.WindowSize = o.window
	}
	if o.noState {
		persist := false
		cfg.Persist = &persist
	}
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}
	opts.apply(cmd.Flags(), cfg)

	logger, closeLog, err := openLogger(opts.logFile, opts.logLevel)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpLogOpen, err)
	}
	defer closeLog()
	slog.SetDefault(logger)
	carousel.SetLogger(logger)

	var mgr state.Interface
	if cfg.PersistEnabled() {
		sm, err := state.Open("")
		if err != nil {
			// The carousel still works without saved preferences.
			slog.Warn(errmsg.Format(errmsg.OpStateOpen, err))
		} else {
			mgr = sm
			defer sm.Close()
		}
	}

	m, err := app.New(cfg, mgr)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpEngineStart, err)
	}
	defer m.Close()

	slog.Info("starting", "items", cfg.ItemCount(), "mode", m.Preset().Name, "state", mgr != nil)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
