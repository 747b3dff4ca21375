package dispatch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/llehouerou/spotui/internal/errmsg"
	"github.com/llehouerou/spotui/internal/musicapi"
	"github.com/llehouerou/spotui/internal/state"
	"github.com/llehouerou/spotui/internal/ui/cursor"
)

// Options are the fixed parameters of the service calls.
type Options struct {
	Market        string
	SmallLimit    int // page size of each search query
	LargeLimit    int // page size of playlist loads
	PlaylistOwner string
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Market:        "GB",
		SmallLimit:    4,
		LargeLimit:    50,
		PlaylistOwner: "spotify",
	}
}

// Dispatcher executes requests against a music service.
type Dispatcher struct {
	svc  musicapi.Service
	opts Options
	log  zerolog.Logger
}

// New creates a Dispatcher.
func New(svc musicapi.Service, opts Options, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{svc: svc, opts: opts, log: log}
}

// Run executes req and folds its result into s before returning.
func (d *Dispatcher) Run(ctx context.Context, req Request, s *state.State) {
	d.Apply(d.Execute(ctx, req), s)
}

// Execute performs the blocking service calls for req. It does not touch
// application state, so it can run off the event loop.
func (d *Dispatcher) Execute(ctx context.Context, req Request) Result {
	switch r := req.(type) {
	case Search:
		return d.search(ctx, r.Query)
	case FetchPlaylistTracks:
		tracks, err := d.svc.PlaylistTracks(ctx, d.opts.PlaylistOwner, r.PlaylistID, d.opts.LargeLimit)
		return PlaylistTracksResult{PlaylistID: r.PlaylistID, Context: r.Context, Tracks: tracks, Err: err}
	case StartPlayback:
		return PlaybackResult{Track: r.Track, Err: d.startPlayback(ctx, r)}
	case FetchDevices:
		devices, err := d.svc.Devices(ctx)
		return DevicesResult{Devices: devices, Err: err}
	case LoadPlaylists:
		playlists, err := d.svc.MyPlaylists(ctx, d.opts.LargeLimit)
		return PlaylistsResult{Playlists: playlists, Err: err}
	}
	panic(fmt.Sprintf("dispatch: unknown request %T", req))
}

func (d *Dispatcher) search(ctx context.Context, query string) SearchResult {
	res := SearchResult{
		Query: query,
		Pages: make(map[musicapi.SearchKind]*musicapi.SearchPage),
		Errs:  make(map[musicapi.SearchKind]error),
	}
	for _, kind := range musicapi.SearchKinds {
		page, err := d.svc.Search(ctx, musicapi.SearchQuery{
			Query:  query,
			Kind:   kind,
			Limit:  d.opts.SmallLimit,
			Offset: 0,
			Market: d.opts.Market,
		})
		if err != nil {
			d.log.Debug().Err(err).Str("kind", string(kind)).Msg("search query failed")
			res.Errs[kind] = err
			continue
		}
		res.Pages[kind] = page
	}
	return res
}

func (d *Dispatcher) startPlayback(ctx context.Context, r StartPlayback) error {
	if r.DeviceID == "" {
		return musicapi.ErrNoDevice
	}
	req := musicapi.PlaybackRequest{
		DeviceID:   r.DeviceID,
		ContextURI: r.ContextURI,
		Offset:     max(r.Offset, 0),
	}
	if r.ContextURI == "" {
		req.URIs = r.URIs
	}
	return d.svc.StartPlayback(ctx, req)
}

// Apply folds a result into s.
func (d *Dispatcher) Apply(res Result, s *state.State) {
	switch r := res.(type) {
	case SearchResult:
		d.applySearch(r, s)
	case PlaylistTracksResult:
		if r.Err != nil {
			d.log.Warn().Err(r.Err).Str("playlist", r.PlaylistID).Msg("playlist tracks fetch failed")
			return
		}
		s.SetSongTable(r.Tracks, r.Context)
		s.Active = state.BlockSongTable
	case PlaybackResult:
		if r.Err != nil {
			s.ShowError(errmsg.Format(errmsg.OpPlaybackStart, r.Err))
			return
		}
		if r.Track != nil {
			t := *r.Track
			s.NowPlaying = &t
		}
	case DevicesResult:
		if r.Err != nil {
			d.log.Warn().Err(r.Err).Msg("device fetch failed")
			return
		}
		if len(r.Devices) > 0 {
			s.Devices.Set(r.Devices)
			s.Devices.Selection = cursor.At(0)
		}
		s.Active = state.BlockSelectDevice
	case PlaylistsResult:
		if r.Err != nil {
			s.ShowError(errmsg.Format(errmsg.OpPlaylistsLoad, r.Err))
			return
		}
		s.Playlists.Set(r.Playlists)
		if len(r.Playlists) > 0 {
			s.Playlists.Seed()
		}
	default:
		panic(fmt.Sprintf("dispatch: unknown result %T", res))
	}
}

func (d *Dispatcher) applySearch(r SearchResult, s *state.State) {
	s.Search.Reset()
	if p := r.Pages[musicapi.KindTrack]; p != nil {
		s.Search.Tracks.Set(p.Tracks)
		s.SetSongTable(p.Tracks, state.ContextSongSearch)
	}
	if p := r.Pages[musicapi.KindArtist]; p != nil {
		s.Search.Artists.Set(p.Artists)
	}
	if p := r.Pages[musicapi.KindAlbum]; p != nil {
		s.Search.Albums.Set(p.Albums)
	}
	if p := r.Pages[musicapi.KindPlaylist]; p != nil {
		s.Search.Playlists.Set(p.Playlists)
	}
	s.Playlists.Selection = cursor.None()

	msg := r.Message()
	if r.AllFailed() {
		s.ShowError(msg)
		return
	}
	if msg != "" {
		d.log.Warn().Str("query", r.Query).Msg(msg)
	}
	s.APIError = msg
	s.Active = state.BlockSearchResults
}
