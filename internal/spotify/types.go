package spotify

import (
	"time"

	"github.com/llehouerou/spotui/internal/musicapi"
)

// Wire shapes for the Web API. Only the fields the client reads are decoded.

type artistRef struct {
	Name string `json:"name"`
}

type albumRef struct {
	Name string `json:"name"`
}

type track struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	URI        string      `json:"uri"`
	DurationMS int         `json:"duration_ms"`
	Artists    []artistRef `json:"artists"`
	Album      albumRef    `json:"album"`
}

type artist struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URI       string `json:"uri"`
	Followers struct {
		Total int `json:"total"`
	} `json:"followers"`
	Genres []string `json:"genres"`
}

type album struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	URI         string      `json:"uri"`
	Artists     []artistRef `json:"artists"`
	ReleaseDate string      `json:"release_date"`
}

type playlist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URI   string `json:"uri"`
	Owner struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"owner"`
	Tracks struct {
		Total int `json:"total"`
	} `json:"tracks"`
}

type device struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	IsActive      bool   `json:"is_active"`
	VolumePercent *int   `json:"volume_percent"`
}

type paging[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type searchResponse struct {
	Tracks    *paging[track]     `json:"tracks"`
	Artists   *paging[artist]    `json:"artists"`
	Albums    *paging[album]     `json:"albums"`
	Playlists *paging[*playlist] `json:"playlists"`
}

type devicesResponse struct {
	Devices []device `json:"devices"`
}

// playlistItem wraps a track inside a playlist. Track is null for removed
// tracks and episodes.
type playlistItem struct {
	Track *track `json:"track"`
}

type playOffset struct {
	Position int `json:"position"`
}

type playBody struct {
	ContextURI string      `json:"context_uri,omitempty"`
	URIs       []string    `json:"uris,omitempty"`
	Offset     *playOffset `json:"offset,omitempty"`
}

type errorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

func names(refs []artistRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}

func (t track) toTrack() musicapi.Track {
	return musicapi.Track{
		ID:       t.ID,
		Name:     t.Name,
		URI:      t.URI,
		Artists:  names(t.Artists),
		Album:    t.Album.Name,
		Duration: time.Duration(t.DurationMS) * time.Millisecond,
	}
}

func (a artist) toArtist() musicapi.Artist {
	return musicapi.Artist{
		ID:        a.ID,
		Name:      a.Name,
		URI:       a.URI,
		Followers: a.Followers.Total,
		Genres:    a.Genres,
	}
}

func (a album) toAlbum() musicapi.Album {
	return musicapi.Album{
		ID:          a.ID,
		Name:        a.Name,
		URI:         a.URI,
		Artists:     names(a.Artists),
		ReleaseDate: a.ReleaseDate,
	}
}

func (p playlist) toPlaylist() musicapi.Playlist {
	owner := p.Owner.DisplayName
	if owner == "" {
		owner = p.Owner.ID
	}
	return musicapi.Playlist{
		ID:         p.ID,
		Name:       p.Name,
		URI:        p.URI,
		Owner:      owner,
		TrackCount: p.Tracks.Total,
	}
}

func (d device) toDevice() musicapi.Device {
	vol := 0
	if d.VolumePercent != nil {
		vol = *d.VolumePercent
	}
	return musicapi.Device{
		ID:     d.ID,
		Name:   d.Name,
		Type:   d.Type,
		Active: d.IsActive,
		Volume: vol,
	}
}
