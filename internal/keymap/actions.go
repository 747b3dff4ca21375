// Package keymap classifies raw key presses into navigation actions.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// ActionNone marks a key with no binding; handlers see it as a literal.
	ActionNone Action = ""

	// Global actions
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"
	ActionSearch  Action = "search"
	ActionDevices Action = "devices"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"

	// Selection/activation actions
	ActionSelect Action = "select" // enter - play/open
	ActionBack   Action = "back"   // esc

	// Text input actions
	ActionClearInput Action = "clear_input" // ctrl+u
	ActionDeleteChar Action = "delete_char" // backspace
)
