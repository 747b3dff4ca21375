// Package dispatch turns the requests raised by key handlers into calls on
// the music service, and folds the outcomes back into application state.
package dispatch

import (
	"github.com/llehouerou/spotui/internal/musicapi"
	"github.com/llehouerou/spotui/internal/state"
)

// Request is a side effect a key handler asks for.
type Request interface {
	isRequest()
}

// Search runs one query against every catalogue kind.
type Search struct {
	Query string
}

// FetchPlaylistTracks loads a playlist into the song table.
type FetchPlaylistTracks struct {
	PlaylistID string
	Context    state.SongTableContext
}

// StartPlayback starts playback on DeviceID. When ContextURI is set, URIs
// are ignored.
type StartPlayback struct {
	DeviceID   string
	ContextURI string
	URIs       []string
	Offset     int
	Track      *musicapi.Track // remembered as now playing on success
}

// FetchDevices lists the available playback devices.
type FetchDevices struct{}

// LoadPlaylists loads the user's playlists.
type LoadPlaylists struct{}

func (Search) isRequest()              {}
func (FetchPlaylistTracks) isRequest() {}
func (StartPlayback) isRequest()       {}
func (FetchDevices) isRequest()        {}
func (LoadPlaylists) isRequest()       {}
