// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for the notes screen.
const (
	// ScrollMargin is the number of notes kept visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the app title line plus the blank line under it.
	HeaderHeight = 2

	// StatusHeight is the status/help line at the bottom of the screen.
	StatusHeight = 1

	// DialRows is one dial row: an icon line above a label line.
	DialRows = 2

	// ListWidthDivisor splits the width between the note list and the
	// detail pane.
	ListWidthDivisor = 2

	// MinListWidth keeps note titles readable on narrow terminals.
	MinListWidth = 24
)
