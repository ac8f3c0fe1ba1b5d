// internal/app/popupctl/types.go
package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Confirm
	Editor
	Help
)

// Priority defines which popup takes precedence (highest priority first).
// A delete confirmation never opens over the editor, but if it did it
// would get the keys.
var Priority = []Type{
	Confirm,
	Editor,
	Help,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Help,
	Editor,
	Confirm,
}
