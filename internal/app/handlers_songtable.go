// internal/app/handlers_songtable.go
package app

import (
	"github.com/llehouerou/spotui/internal/app/handler"
	"github.com/llehouerou/spotui/internal/dispatch"
	"github.com/llehouerou/spotui/internal/keymap"
	"github.com/llehouerou/spotui/internal/musicapi"
	"github.com/llehouerou/spotui/internal/state"
	"github.com/llehouerou/spotui/internal/ui/cursor"
)

func handleSongTable(key keymap.Key, s *state.State) handler.Result {
	return handler.Chain(
		func() handler.Result { return handleQuitKeys(key) },
		func() handler.Result { return handleDevicesKey(key) },
		func() handler.Result { return handleHelpKey(key, s) },
		func() handler.Result { return handleSearchKey(key, s) },
		func() handler.Result { return handleSongTableNav(key, s) },
	)
}

func handleSongTableNav(key keymap.Key, s *state.State) handler.Result {
	//nolint:exhaustive // only navigation keys apply here
	switch key.Action {
	case keymap.ActionMoveLeft:
		s.Active = state.BlockMyPlaylists
		return handler.HandledNoRequest
	case keymap.ActionMoveDown:
		s.SelectedSong = cursor.Advance(len(s.SongTable), cursor.At(s.SelectedSong))
		return handler.HandledNoRequest
	case keymap.ActionMoveUp:
		s.SelectedSong = cursor.Retreat(len(s.SongTable), cursor.At(s.SelectedSong))
		return handler.HandledNoRequest
	case keymap.ActionSelect:
		return playSelectedSong(s)
	}
	return handler.NotHandled
}

// playSelectedSong starts playback from the selected row. What gets played
// depends on where the rows came from: a playlist plays as a context so the
// queue continues past the row; search results play as an explicit list.
func playSelectedSong(s *state.State) handler.Result {
	track, ok := s.SelectedTrack()
	if !ok || !track.Playable() {
		return handler.HandledNoRequest
	}
	ctx, ok := s.TableContext()
	if !ok {
		return handler.HandledNoRequest
	}

	req := dispatch.StartPlayback{
		DeviceID: s.DeviceID,
		Offset:   s.SelectedSong,
		Track:    &track,
	}
	switch ctx {
	case state.ContextMyPlaylists:
		if p, ok := s.Playlists.Selected(); ok {
			req.ContextURI = p.URI
		}
	case state.ContextPlaylistSearch:
		if p, ok := s.Search.Playlists.Selected(); ok {
			req.ContextURI = p.URI
		}
	case state.ContextSongSearch:
		req.URIs = trackURIs(s.SongTable)
	case state.ContextAlbumSearch, state.ContextArtistSearch:
		return handler.HandledNoRequest
	}
	return handler.Handled(req)
}

func trackURIs(tracks []musicapi.Track) []string {
	uris := make([]string, len(tracks))
	for i, t := range tracks {
		uris[i] = t.URI
	}
	return uris
}
