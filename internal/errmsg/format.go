// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad     Op = "load configuration"
	OpConfigValidate Op = "validate configuration"

	// Engine
	OpEngineStart Op = "start carousel"
	OpReconfigure Op = "change carousel mode"
	OpResize      Op = "resize carousel"

	// Preferences and visit history
	OpStateOpen Op = "open state database"
	OpStateLoad Op = "load preferences"
	OpStateSave Op = "update visit history"

	// Logging
	OpLogOpen Op = "open log file"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
