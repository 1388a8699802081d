package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "carousel", "autoplay"
}

// Bindings contains all key bindings, in help display order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Carousel
	{ActionPrev, []string{"h", "left", "k", "up"}, "Previous item", "carousel"},
	{ActionNext, []string{"l", "right", "j", "down"}, "Next item", "carousel"},
	{ActionFirst, []string{"g", "home"}, "First item", "carousel"},
	{ActionLast, []string{"G", "end"}, "Last item", "carousel"},
	{ActionGoTo, []string{":"}, "Go to item", "carousel"},
	{ActionCycleMode, []string{"m"}, "Cycle layout mode", "carousel"},
	{ActionToggleAnimation, []string{"a"}, "Toggle animation", "carousel"},
	{ActionClearHistory, []string{"X"}, "Clear visit history", "carousel"},

	// Autoplay
	{ActionToggleAutoPlay, []string{" "}, "Start/stop autoplay", "autoplay"},
	{ActionReverseAutoPlay, []string{"r"}, "Reverse autoplay", "autoplay"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyBinding converts b into a bubbles key binding for the help line. Only
// the first key is shown.
func (b Binding) KeyBinding() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(DisplayKey(b.Keys[0]), b.Description),
	)
}

// shortHelp lists the status line bindings with their compact labels.
var shortHelp = []struct {
	action Action
	label  string
}{
	{ActionPrev, "prev"},
	{ActionNext, "next"},
	{ActionToggleAutoPlay, "autoplay"},
	{ActionCycleMode, "mode"},
	{ActionHelp, "help"},
	{ActionQuit, "quit"},
}

// ShortHelp returns the bindings shown in the status line.
func ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(shortHelp))
	for _, s := range shortHelp {
		for _, b := range Bindings {
			if b.Action == s.action {
				kb := b.KeyBinding()
				kb.SetHelp(DisplayKey(b.Keys[0]), s.label)
				out = append(out, kb)
				break
			}
		}
	}
	return out
}

// DisplayKey returns the printable name of a key.
func DisplayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
