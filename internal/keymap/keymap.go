package keymap

// Binding contexts, in help display order.
const (
	ContextGlobal = "global"
	ContextNotes  = "notes"
	ContextDial   = "dial"
	ContextList   = "list"
	ContextEditor = "editor"
)

// Binding ties keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains every key binding, used for dispatch and help.
var All = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionSwitchFocus, []string{"tab"}, "Focus next pane", ContextGlobal},
	{ActionSwitchFocusBack, []string{"shift+tab"}, "Focus previous pane", ContextGlobal},
	{ActionToggleOrder, []string{"o"}, "Reverse sort order", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	{ActionNewNote, []string{"n"}, "New note", ContextNotes},
	{ActionEditNote, []string{"e", "enter"}, "Edit selected note", ContextNotes},
	{ActionDeleteNote, []string{"d", "delete"}, "Delete selected note", ContextNotes},
	{ActionCopyNote, []string{"y"}, "Copy selected note", ContextNotes},
	{ActionSearch, []string{"/"}, "Search notes", ContextNotes},
	{ActionClearSearch, []string{"esc"}, "Clear search", ContextNotes},

	{ActionDialPrev, []string{"left", "h"}, "Previous item", ContextDial},
	{ActionDialNext, []string{"right", "l"}, "Next item", ContextDial},
	{ActionDialFirst, []string{"home"}, "First item", ContextDial},
	{ActionDialLast, []string{"end"}, "Last item", ContextDial},

	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextList},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextList},
	{ActionJumpStart, []string{"g", "home"}, "First note", ContextList},
	{ActionJumpEnd, []string{"G", "end"}, "Last note", ContextList},
	{ActionPageUp, []string{"ctrl+u", "pgup"}, "Half page up", ContextList},
	{ActionPageDown, []string{"ctrl+d", "pgdown"}, "Half page down", ContextList},

	{ActionNextField, []string{"tab"}, "Next field", ContextEditor},
	{ActionPrevField, []string{"shift+tab"}, "Previous field", ContextEditor},
	{ActionToggle, []string{"space", "enter"}, "Toggle every year", ContextEditor},
	{ActionSave, []string{"ctrl+s"}, "Save note", ContextEditor},
	{ActionCancel, []string{"esc"}, "Discard changes", ContextEditor},
}

// Contexts lists the binding contexts in display order.
var Contexts = []string{ContextGlobal, ContextNotes, ContextDial, ContextList, ContextEditor}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
