package dispatch

import (
	"strings"

	"github.com/llehouerou/spotui/internal/errmsg"
	"github.com/llehouerou/spotui/internal/musicapi"
	"github.com/llehouerou/spotui/internal/state"
)

// Result is the outcome of executing a Request.
type Result interface {
	isResult()
}

// SearchResult holds the page of every query that succeeded and the error of
// every query that failed.
type SearchResult struct {
	Query string
	Pages map[musicapi.SearchKind]*musicapi.SearchPage
	Errs  map[musicapi.SearchKind]error
}

// Message returns the user-facing description of the failed queries, or ""
// when all succeeded.
func (r SearchResult) Message() string {
	var msgs []string
	for _, kind := range musicapi.SearchKinds {
		if err := r.Errs[kind]; err != nil {
			msgs = append(msgs, errmsg.FormatWith(errmsg.OpSearch, string(kind), err))
		}
	}
	return strings.Join(msgs, "; ")
}

// AllFailed reports whether no query succeeded.
func (r SearchResult) AllFailed() bool {
	return len(r.Pages) == 0 && len(r.Errs) > 0
}

type PlaylistTracksResult struct {
	PlaylistID string
	Context    state.SongTableContext
	Tracks     []musicapi.Track
	Err        error
}

type PlaybackResult struct {
	Track *musicapi.Track
	Err   error
}

type DevicesResult struct {
	Devices []musicapi.Device
	Err     error
}

type PlaylistsResult struct {
	Playlists []musicapi.Playlist
	Err       error
}

func (SearchResult) isResult()         {}
func (PlaylistTracksResult) isResult() {}
func (PlaybackResult) isResult()       {}
func (DevicesResult) isResult()        {}
func (PlaylistsResult) isResult()      {}
