// Package musicapi defines the music-service capability the client talks to,
// along with the catalogue types it returns.
package musicapi

import (
	"errors"
	"strings"
	"time"
)

// ErrNoDevice is returned when playback is requested before a device is chosen.
var ErrNoDevice = errors.New("no device selected")

// SearchKind is the catalogue category a search query targets.
type SearchKind string

const (
	KindTrack    SearchKind = "track"
	KindArtist   SearchKind = "artist"
	KindAlbum    SearchKind = "album"
	KindPlaylist SearchKind = "playlist"
)

// SearchKinds lists every kind in the order a full search runs them.
var SearchKinds = []SearchKind{KindTrack, KindArtist, KindAlbum, KindPlaylist}

// Track is a playable song.
type Track struct {
	ID       string
	Name     string
	URI      string
	Artists  []string
	Album    string
	Duration time.Duration
}

// Playable reports whether the track can be started. Playlist entries that
// were removed from the catalogue have no URI.
func (t Track) Playable() bool {
	return t.URI != ""
}

// ArtistNames returns the track's artists joined for display.
func (t Track) ArtistNames() string {
	return strings.Join(t.Artists, ", ")
}

type Artist struct {
	ID        string
	Name      string
	URI       string
	Followers int
	Genres    []string
}

type Album struct {
	ID          string
	Name        string
	URI         string
	Artists     []string
	ReleaseDate string
}

type Playlist struct {
	ID         string
	Name       string
	URI        string
	Owner      string
	TrackCount int
}

// Device is a playback target registered with the service.
type Device struct {
	ID     string
	Name   string
	Type   string
	Active bool
	Volume int
}

// SearchQuery describes a single catalogue search.
type SearchQuery struct {
	Query  string
	Kind   SearchKind
	Limit  int
	Offset int
	Market string
}

// SearchPage holds one page of results. Only the slice matching the query's
// kind is populated.
type SearchPage struct {
	Tracks    []Track
	Artists   []Artist
	Albums    []Album
	Playlists []Playlist
}

// PlaybackRequest starts playback on a device. ContextURI and URIs are
// mutually exclusive; when both are empty the device resumes.
type PlaybackRequest struct {
	DeviceID   string
	ContextURI string
	URIs       []string
	Offset     int
}
