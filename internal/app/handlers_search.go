// internal/app/handlers_search.go
package app

import (
	"github.com/llehouerou/spotui/internal/app/handler"
	"github.com/llehouerou/spotui/internal/dispatch"
	"github.com/llehouerou/spotui/internal/keymap"
	"github.com/llehouerou/spotui/internal/state"
)

// The four result panels sit in a 2x2 grid:
//
//	songs  | artists
//	albums | playlists
//
// Up and down swap within a column, left and right move across columns.
var (
	verticalRing = map[state.Panel]state.Panel{
		state.PanelAlbums:    state.PanelSongs,
		state.PanelSongs:     state.PanelAlbums,
		state.PanelArtists:   state.PanelPlaylists,
		state.PanelPlaylists: state.PanelArtists,
	}
	rightRing = map[state.Panel]state.Panel{
		state.PanelAlbums:    state.PanelPlaylists,
		state.PanelSongs:     state.PanelArtists,
		state.PanelArtists:   state.PanelSongs,
		state.PanelPlaylists: state.PanelAlbums,
	}
)

func handleSearchResults(key keymap.Key, s *state.State) handler.Result {
	return handler.Chain(
		func() handler.Result { return handleQuitKeys(key) },
		func() handler.Result { return handleDevicesKey(key) },
		func() handler.Result { return handleHelpKey(key, s) },
		func() handler.Result { return handleSearchNav(key, s) },
	)
}

func handleSearchNav(key keymap.Key, s *state.State) handler.Result {
	r := &s.Search
	focused, hasFocus := r.Focused()

	//nolint:exhaustive // only navigation keys apply here
	switch key.Action {
	case keymap.ActionMoveDown:
		if hasFocus {
			r.Next(focused)
		} else {
			r.Hovered = verticalRing[r.Hovered]
		}
		return handler.HandledNoRequest
	case keymap.ActionMoveUp:
		if hasFocus {
			r.Prev(focused)
		} else {
			r.Hovered = verticalRing[r.Hovered]
		}
		return handler.HandledNoRequest
	case keymap.ActionMoveLeft:
		r.Blur()
		switch r.Hovered {
		case state.PanelAlbums, state.PanelSongs:
			s.Active = state.BlockMyPlaylists
		case state.PanelArtists:
			r.Hovered = state.PanelSongs
		case state.PanelPlaylists:
			r.Hovered = state.PanelAlbums
		}
		return handler.HandledNoRequest
	case keymap.ActionMoveRight:
		r.Blur()
		r.Hovered = rightRing[r.Hovered]
		return handler.HandledNoRequest
	case keymap.ActionBack:
		r.Blur()
		return handler.HandledNoRequest
	case keymap.ActionSelect:
		if !hasFocus {
			r.Focus(r.Hovered)
			return handler.HandledNoRequest
		}
		return openFocused(focused, s)
	}
	return handler.NotHandled
}

func openFocused(p state.Panel, s *state.State) handler.Result {
	switch p {
	case state.PanelSongs:
		track, ok := s.Search.Tracks.Selected()
		if !ok {
			return handler.HandledNoRequest
		}
		return handler.Handled(dispatch.StartPlayback{
			DeviceID: s.DeviceID,
			URIs:     []string{track.URI},
			Offset:   0,
			Track:    &track,
		})
	case state.PanelPlaylists:
		pl, ok := s.Search.Playlists.Selected()
		if !ok {
			return handler.HandledNoRequest
		}
		return handler.Handled(dispatch.FetchPlaylistTracks{
			PlaylistID: pl.ID,
			Context:    state.ContextPlaylistSearch,
		})
	case state.PanelAlbums, state.PanelArtists:
		// no album or artist view yet
	}
	return handler.HandledNoRequest
}
