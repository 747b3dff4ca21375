// internal/app/handlers_input.go
package app

import (
	"unicode/utf8"

	"github.com/llehouerou/spotui/internal/app/handler"
	"github.com/llehouerou/spotui/internal/dispatch"
	"github.com/llehouerou/spotui/internal/keymap"
	"github.com/llehouerou/spotui/internal/state"
)

// handleInput handles the search box. Printable keys are text here, including
// the ones bound to movement elsewhere.
func handleInput(key keymap.Key, s *state.State) handler.Result {
	return handler.Chain(
		func() handler.Result { return handleQuitKeys(key) },
		func() handler.Result { return handleInputEdit(key, s) },
	)
}

func handleInputEdit(key keymap.Key, s *state.State) handler.Result {
	//nolint:exhaustive // remaining actions are typed as text
	switch key.Action {
	case keymap.ActionClearInput:
		s.Input = ""
		return handler.HandledNoRequest
	case keymap.ActionBack:
		s.Active = state.BlockMyPlaylists
		return handler.HandledNoRequest
	case keymap.ActionSelect:
		return handler.Handled(dispatch.Search{Query: s.Input})
	case keymap.ActionDeleteChar:
		_, size := utf8.DecodeLastRuneInString(s.Input)
		s.Input = s.Input[:len(s.Input)-size]
		return handler.HandledNoRequest
	}

	if text := key.Text(); text != "" {
		s.Input += text
		return handler.HandledNoRequest
	}
	return handler.NotHandled
}
