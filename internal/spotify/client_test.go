package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/spotui/internal/musicapi"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, "tok", time.Second)
}

func TestNew_Defaults(t *testing.T) {
	c := New("", "", 0)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, 10*time.Second, c.httpClient.Timeout)
}

func TestSearch_Tracks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "daft punk", q.Get("q"))
		assert.Equal(t, "track", q.Get("type"))
		assert.Equal(t, "4", q.Get("limit"))
		assert.Equal(t, "GB", q.Get("market"))
		assert.Empty(t, q.Get("offset"))
		_, _ = io.WriteString(w, `{"tracks":{"items":[
			{"id":"t1","name":"One More Time","uri":"spotify:track:t1","duration_ms":320000,
			 "artists":[{"name":"Daft Punk"}],"album":{"name":"Discovery"}}
		]}}`)
	})

	page, err := c.Search(context.Background(), musicapi.SearchQuery{
		Query: "daft punk", Kind: musicapi.KindTrack, Limit: 4, Market: "GB",
	})
	require.NoError(t, err)
	require.Len(t, page.Tracks, 1)
	tr := page.Tracks[0]
	assert.Equal(t, "One More Time", tr.Name)
	assert.Equal(t, "spotify:track:t1", tr.URI)
	assert.Equal(t, []string{"Daft Punk"}, tr.Artists)
	assert.Equal(t, "Discovery", tr.Album)
	assert.Equal(t, 320*time.Second, tr.Duration)
	assert.Empty(t, page.Artists)
}

func TestSearch_OtherKinds(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("type") {
		case "artist":
			_, _ = io.WriteString(w, `{"artists":{"items":[{"id":"a1","name":"Air","followers":{"total":1200},"genres":["electronic"]}]}}`)
		case "album":
			_, _ = io.WriteString(w, `{"albums":{"items":[{"id":"b1","name":"Moon Safari","artists":[{"name":"Air"}],"release_date":"1998"}]}}`)
		case "playlist":
			_, _ = io.WriteString(w, `{"playlists":{"items":[null,{"id":"p1","name":"Chill","uri":"spotify:playlist:p1","owner":{"id":"spotify"},"tracks":{"total":80}}]}}`)
		}
	})
	ctx := context.Background()

	page, err := c.Search(ctx, musicapi.SearchQuery{Query: "air", Kind: musicapi.KindArtist})
	require.NoError(t, err)
	require.Len(t, page.Artists, 1)
	assert.Equal(t, 1200, page.Artists[0].Followers)
	assert.Equal(t, []string{"electronic"}, page.Artists[0].Genres)

	page, err = c.Search(ctx, musicapi.SearchQuery{Query: "air", Kind: musicapi.KindAlbum})
	require.NoError(t, err)
	require.Len(t, page.Albums, 1)
	assert.Equal(t, "1998", page.Albums[0].ReleaseDate)

	page, err = c.Search(ctx, musicapi.SearchQuery{Query: "air", Kind: musicapi.KindPlaylist})
	require.NoError(t, err)
	require.Len(t, page.Playlists, 1, "null entries are skipped")
	assert.Equal(t, "spotify", page.Playlists[0].Owner)
	assert.Equal(t, 80, page.Playlists[0].TrackCount)
}

func TestSearch_UnsupportedKind(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})
	_, err := c.Search(context.Background(), musicapi.SearchQuery{Query: "x", Kind: "show"})
	assert.Error(t, err)
}

func TestDevices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/player/devices", r.URL.Path)
		_, _ = io.WriteString(w, `{"devices":[
			{"id":"d1","name":"Laptop","type":"Computer","is_active":true,"volume_percent":70},
			{"id":"d2","name":"TV","type":"TV","is_active":false,"volume_percent":null}
		]}`)
	})

	devices, err := c.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, musicapi.Device{ID: "d1", Name: "Laptop", Type: "Computer", Active: true, Volume: 70}, devices[0])
	assert.Equal(t, 0, devices[1].Volume)
}

func TestStartPlayback(t *testing.T) {
	tests := []struct {
		name string
		req  musicapi.PlaybackRequest
		want map[string]any
	}{
		{
			name: "context wins over uris",
			req: musicapi.PlaybackRequest{
				DeviceID: "d1", ContextURI: "spotify:playlist:p1",
				URIs: []string{"spotify:track:t1"}, Offset: 3,
			},
			want: map[string]any{
				"context_uri": "spotify:playlist:p1",
				"offset":      map[string]any{"position": float64(3)},
			},
		},
		{
			name: "uris only",
			req: musicapi.PlaybackRequest{
				DeviceID: "d1", URIs: []string{"spotify:track:t1", "spotify:track:t2"}, Offset: 1,
			},
			want: map[string]any{
				"uris":   []any{"spotify:track:t1", "spotify:track:t2"},
				"offset": map[string]any{"position": float64(1)},
			},
		},
		{
			name: "negative offset clamps to zero",
			req:  musicapi.PlaybackRequest{DeviceID: "d1", ContextURI: "spotify:album:a1", Offset: -2},
			want: map[string]any{
				"context_uri": "spotify:album:a1",
				"offset":      map[string]any{"position": float64(0)},
			},
		},
		{
			name: "resume",
			req:  musicapi.PlaybackRequest{DeviceID: "d1"},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/me/player/play", r.URL.Path)
				assert.Equal(t, "d1", r.URL.Query().Get("device_id"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(http.StatusNoContent)
			})

			require.NoError(t, c.StartPlayback(context.Background(), tt.req))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStartPlayback_NoDevice(t *testing.T) {
	called := false
	c := newTestClient(t, func(http.ResponseWriter, *http.Request) { called = true })

	err := c.StartPlayback(context.Background(), musicapi.PlaybackRequest{ContextURI: "spotify:album:a1"})
	assert.ErrorIs(t, err, musicapi.ErrNoDevice)
	assert.False(t, called)
}

func TestPlaylistTracks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/spotify/playlists/p1/tracks", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		_, _ = io.WriteString(w, `{"items":[
			{"track":{"id":"t1","name":"A","uri":"spotify:track:t1","duration_ms":1000,"artists":[],"album":{"name":"X"}}},
			{"track":null},
			{"track":{"id":"t2","name":"B","uri":"spotify:track:t2","duration_ms":2000,"artists":[{"name":"Y"}],"album":{"name":"Z"}}}
		]}`)
	})

	tracks, err := c.PlaylistTracks(context.Background(), "spotify", "p1", 50)
	require.NoError(t, err)
	require.Len(t, tracks, 3, "a removed track keeps its position")
	assert.Equal(t, "t1", tracks[0].ID)
	assert.False(t, tracks[1].Playable())
	assert.Equal(t, "t2", tracks[2].ID)
	assert.True(t, tracks[2].Playable())
}

func TestMyPlaylists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/playlists", r.URL.Path)
		_, _ = io.WriteString(w, `{"items":[{"id":"p1","name":"Mine","uri":"spotify:playlist:p1","owner":{"id":"me","display_name":"Me"},"tracks":{"total":3}}]}`)
	})

	playlists, err := c.MyPlaylists(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Equal(t, musicapi.Playlist{ID: "p1", Name: "Mine", URI: "spotify:playlist:p1", Owner: "Me", TrackCount: 3}, playlists[0])
}

func TestErrors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		_, err := c.Devices(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("error envelope", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":{"status":404,"message":"Player command failed: No active device found"}}`)
		})
		err := c.StartPlayback(context.Background(), musicapi.PlaybackRequest{DeviceID: "d1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "No active device found")
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("bad json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{`)
		})
		_, err := c.MyPlaylists(context.Background(), 0)
		assert.ErrorContains(t, err, "decode response")
	})

	t.Run("canceled context", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{}`)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.Devices(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
