package musicapi

import "context"

// Service is the remote music service. Every call may fail; callers decide
// whether a failure is surfaced or dropped.
type Service interface {
	Search(ctx context.Context, q SearchQuery) (*SearchPage, error)
	Devices(ctx context.Context) ([]Device, error)
	StartPlayback(ctx context.Context, req PlaybackRequest) error
	PlaylistTracks(ctx context.Context, owner, playlistID string, limit int) ([]Track, error)
	MyPlaylists(ctx context.Context, limit int) ([]Playlist, error)
}
