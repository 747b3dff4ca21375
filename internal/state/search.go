package state

import "github.com/llehouerou/spotui/internal/musicapi"

// SearchResults holds the four result panels of the last search together
// with two cursors: the hovered panel, which always exists, and the focused
// panel, which is optional. Each panel keeps its own selected index, so
// leaving a panel and coming back restores where the user was.
type SearchResults struct {
	Tracks    List[musicapi.Track]
	Artists   List[musicapi.Artist]
	Albums    List[musicapi.Album]
	Playlists List[musicapi.Playlist]

	Hovered Panel

	focused  Panel
	hasFocus bool
}

// Focused returns the focused panel, if any.
func (r *SearchResults) Focused() (Panel, bool) {
	return r.focused, r.hasFocus
}

// Focus makes p the focused panel and seeds its index if it has none.
func (r *SearchResults) Focus(p Panel) {
	r.focused = p
	r.hasFocus = true
	r.panel(p).Seed()
}

// Blur drops the focus. Panel indices are kept.
func (r *SearchResults) Blur() {
	r.hasFocus = false
}

// Next moves the selection of panel p forward.
func (r *SearchResults) Next(p Panel) {
	r.panel(p).Next()
}

// Prev moves the selection of panel p backward.
func (r *SearchResults) Prev(p Panel) {
	r.panel(p).Prev()
}

// Reset drops every panel and the focus, keeping the hovered panel.
func (r *SearchResults) Reset() {
	r.Tracks.Clear()
	r.Artists.Clear()
	r.Albums.Clear()
	r.Playlists.Clear()
	r.hasFocus = false
}

func (r *SearchResults) panel(p Panel) navigable {
	switch p {
	case PanelAlbums:
		return &r.Albums
	case PanelSongs:
		return &r.Tracks
	case PanelArtists:
		return &r.Artists
	case PanelPlaylists:
		return &r.Playlists
	}
	return &r.Tracks
}
