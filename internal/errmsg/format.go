// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Note operations
	OpNoteLoad   Op = "load notes"
	OpNoteSave   Op = "save note"
	OpNoteDelete Op = "delete note"
	OpNoteSeed   Op = "add sample notes"
	OpNoteCopy   Op = "copy note"
	OpNoteReload Op = "reload notes"

	// Archive
	OpNoteExport Op = "export notes"
	OpNoteImport Op = "import notes"

	// Editor
	OpNoteValidate Op = "validate note"
	OpDateParse    Op = "parse anniversary date"

	// Startup
	OpConfigLoad Op = "load configuration"
	OpStoreOpen  Op = "open note store"
	OpStoreWatch Op = "watch note store"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize application"
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

// Wrap returns err prefixed with the operation, for errors that leave the
// UI (startup failures printed to stderr).
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
