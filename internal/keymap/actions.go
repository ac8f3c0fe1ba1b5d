// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit            Action = "quit"
	ActionSwitchFocus     Action = "switch_focus"
	ActionSwitchFocusBack Action = "switch_focus_back"
	ActionToggleOrder     Action = "toggle_order"
	ActionHelp            Action = "help"

	// Note actions
	ActionNewNote     Action = "new_note"
	ActionEditNote    Action = "edit_note"
	ActionDeleteNote  Action = "delete_note"
	ActionCopyNote    Action = "copy_note"
	ActionSearch      Action = "search"
	ActionClearSearch Action = "clear_search"

	// Dial actions (focused dial)
	ActionDialPrev  Action = "dial_prev"
	ActionDialNext  Action = "dial_next"
	ActionDialFirst Action = "dial_first"
	ActionDialLast  Action = "dial_last"

	// List navigation
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Editor popup
	ActionNextField Action = "next_field"
	ActionPrevField Action = "prev_field"
	ActionSave      Action = "save"
	ActionCancel    Action = "cancel"
	ActionToggle    Action = "toggle"
)
