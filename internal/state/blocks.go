package state

// ActiveBlock identifies the screen region that receives key input.
type ActiveBlock int

const (
	BlockInput ActiveBlock = iota
	BlockMyPlaylists
	BlockSongTable
	BlockSearchResults
	BlockHelpMenu
	BlockAPIError
	BlockSelectDevice
)

func (b ActiveBlock) String() string {
	switch b {
	case BlockInput:
		return "input"
	case BlockMyPlaylists:
		return "my_playlists"
	case BlockSongTable:
		return "song_table"
	case BlockSearchResults:
		return "search_results"
	case BlockHelpMenu:
		return "help_menu"
	case BlockAPIError:
		return "api_error"
	case BlockSelectDevice:
		return "select_device"
	}
	return "unknown"
}

// Panel is one of the four search result lists.
type Panel int

const (
	PanelAlbums Panel = iota
	PanelSongs
	PanelArtists
	PanelPlaylists
)

func (p Panel) String() string {
	switch p {
	case PanelAlbums:
		return "albums"
	case PanelSongs:
		return "songs"
	case PanelArtists:
		return "artists"
	case PanelPlaylists:
		return "playlists"
	}
	return "unknown"
}

// SongTableContext records where the rows of the song table came from, which
// decides what Enter plays.
type SongTableContext int

const (
	ContextMyPlaylists SongTableContext = iota
	ContextPlaylistSearch
	ContextAlbumSearch
	ContextArtistSearch
	ContextSongSearch
)

func (c SongTableContext) String() string {
	switch c {
	case ContextMyPlaylists:
		return "my_playlists"
	case ContextPlaylistSearch:
		return "playlist_search"
	case ContextAlbumSearch:
		return "album_search"
	case ContextArtistSearch:
		return "artist_search"
	case ContextSongSearch:
		return "song_search"
	}
	return "unknown"
}
