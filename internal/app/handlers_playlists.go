// internal/app/handlers_playlists.go
package app

import (
	"github.com/llehouerou/spotui/internal/app/handler"
	"github.com/llehouerou/spotui/internal/dispatch"
	"github.com/llehouerou/spotui/internal/keymap"
	"github.com/llehouerou/spotui/internal/state"
)

func handlePlaylists(key keymap.Key, s *state.State) handler.Result {
	return handler.Chain(
		func() handler.Result { return handleQuitKeys(key) },
		func() handler.Result { return handleDevicesKey(key) },
		func() handler.Result { return handleHelpKey(key, s) },
		func() handler.Result { return handleSearchKey(key, s) },
		func() handler.Result { return handlePlaylistNav(key, s) },
	)
}

// handlePlaylistNav moves through the playlists. Without a selection the
// arrows do nothing; the selection is seeded when the playlists load.
func handlePlaylistNav(key keymap.Key, s *state.State) handler.Result {
	//nolint:exhaustive // only navigation keys apply here
	switch key.Action {
	case keymap.ActionMoveDown:
		if s.Playlists.Selection.IsSet() {
			s.Playlists.Next()
		}
		return handler.HandledNoRequest
	case keymap.ActionMoveUp:
		if s.Playlists.Selection.IsSet() {
			s.Playlists.Prev()
		}
		return handler.HandledNoRequest
	case keymap.ActionMoveRight:
		if s.Playlists.Selection.IsSet() {
			s.Active = state.BlockSongTable
		} else if s.Input != "" {
			s.Active = state.BlockSearchResults
		}
		return handler.HandledNoRequest
	case keymap.ActionSelect:
		p, ok := s.Playlists.Selected()
		if !ok {
			return handler.HandledNoRequest
		}
		return handler.Handled(dispatch.FetchPlaylistTracks{
			PlaylistID: p.ID,
			Context:    state.ContextMyPlaylists,
		})
	}
	return handler.NotHandled
}
