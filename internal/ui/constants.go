// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// HeaderHeight is the single header line above the carousel.
	HeaderHeight = 1

	// StatusHeight is the status line below the carousel.
	StatusHeight = 1

	// ChromeHeight is the vertical space not available to cards.
	ChromeHeight = HeaderHeight + StatusHeight

	// BorderWidth is the horizontal space consumed by a card border.
	BorderWidth = 2

	// BorderHeight is the vertical space consumed by a card border.
	BorderHeight = 2
)
