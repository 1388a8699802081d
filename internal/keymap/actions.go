// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Navigation actions
	ActionPrev  Action = "prev"
	ActionNext  Action = "next"
	ActionFirst Action = "first"
	ActionLast  Action = "last"
	ActionGoTo  Action = "goto" // opens the index prompt

	// Autoplay actions
	ActionToggleAutoPlay  Action = "toggle_autoplay"
	ActionReverseAutoPlay Action = "reverse_autoplay"

	// Layout actions
	ActionCycleMode       Action = "cycle_mode"
	ActionToggleAnimation Action = "toggle_animation" // animated vs instant navigation

	// History actions
	ActionClearHistory Action = "clear_history"
)
