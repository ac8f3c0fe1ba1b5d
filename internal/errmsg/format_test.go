//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpNoteSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpNoteSave,
			err:      errors.New("disk full"),
			expected: "Failed to save note: disk full",
		},
		{
			name:     "load operation",
			op:       OpNoteLoad,
			err:      errors.New("database is locked"),
			expected: "Failed to load notes: database is locked",
		},
		{
			name:     "delete operation",
			op:       OpNoteDelete,
			err:      errors.New("not found"),
			expected: "Failed to delete note: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpNoteDelete,
			context:  "Coffee",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpNoteDelete,
			context:  "",
			err:      errors.New("busy"),
			expected: "Failed to delete note: busy",
		},
		{
			name:     "context is quoted",
			op:       OpDateParse,
			context:  "2020-13-01",
			err:      errors.New("month out of range"),
			expected: "Failed to parse anniversary date '2020-13-01': month out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(OpStoreOpen, nil) != nil {
		t.Error("Wrap(nil) should be nil")
	}

	cause := errors.New("permission denied")
	err := Wrap(OpStoreOpen, cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause")
	}
	if err.Error() != "open note store: permission denied" {
		t.Errorf("Wrap() = %q", err.Error())
	}
}
