// Package state holds the in-memory application state that key handlers
// mutate and request results are folded into.
package state

import "github.com/llehouerou/spotui/internal/musicapi"

// State is the whole client state. It is owned by a single event loop and is
// never shared between goroutines.
type State struct {
	Active ActiveBlock
	Input  string

	Playlists List[musicapi.Playlist]
	Devices   List[musicapi.Device]
	DeviceID  string

	SongTable        []musicapi.Track
	SelectedSong     int
	songTableContext SongTableContext
	hasTableContext  bool

	Search SearchResults

	NowPlaying *musicapi.Track
	APIError   string
}

// New returns the initial state: playlists focused, nothing fetched.
func New() *State {
	return &State{
		Active: BlockMyPlaylists,
		Search: SearchResults{Hovered: PanelSongs},
	}
}

// TableContext returns where the song table rows came from, if known.
func (s *State) TableContext() (SongTableContext, bool) {
	return s.songTableContext, s.hasTableContext
}

// SetSongTable replaces the song table rows and their origin, selecting the
// first row.
func (s *State) SetSongTable(tracks []musicapi.Track, ctx SongTableContext) {
	s.SongTable = tracks
	s.SelectedSong = 0
	s.songTableContext = ctx
	s.hasTableContext = true
}

// SelectedTrack returns the selected song table row, if it exists.
func (s *State) SelectedTrack() (musicapi.Track, bool) {
	if s.SelectedSong < 0 || s.SelectedSong >= len(s.SongTable) {
		return musicapi.Track{}, false
	}
	return s.SongTable[s.SelectedSong], true
}

// ShowError records a user-facing error and switches to the error screen.
func (s *State) ShowError(msg string) {
	s.APIError = msg
	s.Active = BlockAPIError
}
