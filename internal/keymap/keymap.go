package keymap

import "fmt"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "navigation", "input", "playlists", "song_table", "search", "devices"
}

// Bindings contains the default key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionSearch, []string{"/"}, "Enter search", "global"},
	{ActionDevices, []string{"d"}, "Select device", "global"},
	{ActionBack, []string{"esc"}, "Back to playlists", "global"},

	// Navigation
	{ActionMoveDown, []string{"down", "j", "ctrl+n"}, "Move down", "navigation"},
	{ActionMoveUp, []string{"up", "k", "ctrl+p"}, "Move up", "navigation"},
	{ActionMoveLeft, []string{"left", "h"}, "Move left", "navigation"},
	{ActionMoveRight, []string{"right", "l"}, "Move right", "navigation"},

	// Input
	{ActionSelect, []string{"enter"}, "Search", "input"},
	{ActionClearInput, []string{"ctrl+u"}, "Clear input", "input"},
	{ActionDeleteChar, []string{"backspace"}, "Delete character", "input"},

	// Blocks
	{ActionSelect, []string{"enter"}, "Open playlist", "playlists"},
	{ActionSelect, []string{"enter"}, "Play from selected song", "song_table"},
	{ActionSelect, []string{"enter"}, "Focus panel / play / open", "search"},
	{ActionBack, []string{"esc"}, "Leave panel", "search"},
	{ActionSelect, []string{"enter"}, "Use device", "devices"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Override returns a copy of bindings where every action named in overrides
// is bound to the given keys instead of its defaults. A key may end up on
// only one action.
func Override(bindings []Binding, overrides map[string][]string) ([]Binding, error) {
	known := make(map[Action]bool, len(bindings))
	for _, b := range bindings {
		known[b.Action] = true
	}
	for name, keys := range overrides {
		if !known[Action(name)] {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("action %q: no keys", name)
		}
	}

	result := make([]Binding, len(bindings))
	owner := make(map[string]Action)
	for i, b := range bindings {
		if keys, ok := overrides[string(b.Action)]; ok {
			b.Keys = append([]string(nil), keys...)
		}
		for _, key := range b.Keys {
			if prev, ok := owner[key]; ok && prev != b.Action {
				return nil, fmt.Errorf("key %q bound to both %q and %q", key, prev, b.Action)
			}
			owner[key] = b.Action
		}
		result[i] = b
	}
	return result, nil
}
