// Package spotify provides a client for the Spotify Web API.
package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/llehouerou/spotui/internal/musicapi"
)

// ErrUnauthorized is returned when the access token is missing, expired or revoked.
var ErrUnauthorized = errors.New("unauthorized: access token rejected")

// DefaultBaseURL is the public Web API root.
const DefaultBaseURL = "https://api.spotify.com/v1"

const userAgent = "spotui/1.0 (https://github.com/llehouerou/spotui)"

// Client is a Spotify Web API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ musicapi.Service = (*Client)(nil)

// New creates a new client. An empty baseURL selects DefaultBaseURL.
func New(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search runs one catalogue search for a single kind.
func (c *Client) Search(ctx context.Context, q musicapi.SearchQuery) (*musicapi.SearchPage, error) {
	params := url.Values{}
	params.Set("q", q.Query)
	params.Set("type", string(q.Kind))
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Market != "" {
		params.Set("market", q.Market)
	}

	var resp searchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		return nil, err
	}

	page := &musicapi.SearchPage{}
	switch q.Kind {
	case musicapi.KindTrack:
		if resp.Tracks != nil {
			for _, t := range resp.Tracks.Items {
				page.Tracks = append(page.Tracks, t.toTrack())
			}
		}
	case musicapi.KindArtist:
		if resp.Artists != nil {
			for _, a := range resp.Artists.Items {
				page.Artists = append(page.Artists, a.toArtist())
			}
		}
	case musicapi.KindAlbum:
		if resp.Albums != nil {
			for _, a := range resp.Albums.Items {
				page.Albums = append(page.Albums, a.toAlbum())
			}
		}
	case musicapi.KindPlaylist:
		if resp.Playlists != nil {
			for _, p := range resp.Playlists.Items {
				if p == nil {
					continue
				}
				page.Playlists = append(page.Playlists, p.toPlaylist())
			}
		}
	default:
		return nil, fmt.Errorf("unsupported search kind %q", q.Kind)
	}
	return page, nil
}

// Devices lists the playback targets available to the user.
func (c *Client) Devices(ctx context.Context) ([]musicapi.Device, error) {
	var resp devicesResponse
	if err := c.get(ctx, "/me/player/devices", nil, &resp); err != nil {
		return nil, err
	}
	devices := make([]musicapi.Device, 0, len(resp.Devices))
	for _, d := range resp.Devices {
		devices = append(devices, d.toDevice())
	}
	return devices, nil
}

// StartPlayback starts or resumes playback on a device.
// A context URI takes precedence over an explicit track list.
func (c *Client) StartPlayback(ctx context.Context, req musicapi.PlaybackRequest) error {
	if req.DeviceID == "" {
		return musicapi.ErrNoDevice
	}

	var body playBody
	switch {
	case req.ContextURI != "":
		body.ContextURI = req.ContextURI
		body.Offset = &playOffset{Position: max(req.Offset, 0)}
	case len(req.URIs) > 0:
		body.URIs = req.URIs
		body.Offset = &playOffset{Position: max(req.Offset, 0)}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	params := url.Values{}
	params.Set("device_id", req.DeviceID)
	return c.do(ctx, http.MethodPut, "/me/player/play", params, bytes.NewReader(jsonBody), nil)
}

// PlaylistTracks returns the first limit tracks of a playlist, one per
// position. Unavailable entries come back as tracks without a URI.
func (c *Client) PlaylistTracks(ctx context.Context, owner, playlistID string, limit int) ([]musicapi.Track, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	path := "/users/" + url.PathEscape(owner) + "/playlists/" + url.PathEscape(playlistID) + "/tracks"

	var resp paging[playlistItem]
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	tracks := make([]musicapi.Track, 0, len(resp.Items))
	for _, item := range resp.Items {
		// Removed tracks still hold their position in the playlist, which
		// playback offsets count.
		if item.Track == nil {
			tracks = append(tracks, musicapi.Track{})
			continue
		}
		tracks = append(tracks, item.Track.toTrack())
	}
	return tracks, nil
}

// MyPlaylists returns the current user's playlists.
func (c *Client) MyPlaylists(ctx context.Context, limit int) ([]musicapi.Playlist, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var resp paging[playlist]
	if err := c.get(ctx, "/me/playlists", params, &resp); err != nil {
		return nil, err
	}
	playlists := make([]musicapi.Playlist, 0, len(resp.Items))
	for _, p := range resp.Items {
		playlists = append(playlists, p.toPlaylist())
	}
	return playlists, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, http.NoBody, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body io.Reader, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, body != http.NoBody)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
}

// statusError builds an error from a non-2xx response, preferring the
// message in the API's error envelope.
func statusError(resp *http.Response) error {
	var e errorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(data, &e) == nil && e.Error.Message != "" {
		return fmt.Errorf("unexpected status: %s: %s", resp.Status, e.Error.Message)
	}
	return fmt.Errorf("unexpected status: %s", resp.Status)
}
