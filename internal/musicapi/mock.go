package musicapi

import (
	"context"
	"sync"
)

// PlaylistTracksCall records the arguments of a PlaylistTracks call.
type PlaylistTracksCall struct {
	Owner      string
	PlaylistID string
	Limit      int
}

// Mock is a test double for Service. Results and errors are set through the
// exported fields; every call is recorded.
type Mock struct {
	mu sync.Mutex

	SearchResults map[SearchKind]*SearchPage
	SearchErrs    map[SearchKind]error
	DeviceList    []Device
	DevicesErr    error
	PlaybackErr   error
	Tracks        map[string][]Track
	TracksErr     error
	Playlists     []Playlist
	PlaylistsErr  error

	searchCalls   []SearchQuery
	playbackCalls []PlaybackRequest
	tracksCalls   []PlaylistTracksCall
	devicesCalls  int
}

// NewMock creates an empty mock service.
func NewMock() *Mock {
	return &Mock{
		SearchResults: make(map[SearchKind]*SearchPage),
		SearchErrs:    make(map[SearchKind]error),
		Tracks:        make(map[string][]Track),
	}
}

func (m *Mock) Search(_ context.Context, q SearchQuery) (*SearchPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls = append(m.searchCalls, q)
	if err := m.SearchErrs[q.Kind]; err != nil {
		return nil, err
	}
	if page := m.SearchResults[q.Kind]; page != nil {
		return page, nil
	}
	return &SearchPage{}, nil
}

func (m *Mock) Devices(_ context.Context) ([]Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.devicesCalls++
	if m.DevicesErr != nil {
		return nil, m.DevicesErr
	}
	return m.DeviceList, nil
}

func (m *Mock) StartPlayback(_ context.Context, req PlaybackRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playbackCalls = append(m.playbackCalls, req)
	return m.PlaybackErr
}

func (m *Mock) PlaylistTracks(_ context.Context, owner, playlistID string, limit int) ([]Track, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tracksCalls = append(m.tracksCalls, PlaylistTracksCall{owner, playlistID, limit})
	if m.TracksErr != nil {
		return nil, m.TracksErr
	}
	return m.Tracks[playlistID], nil
}

func (m *Mock) MyPlaylists(_ context.Context, _ int) ([]Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PlaylistsErr != nil {
		return nil, m.PlaylistsErr
	}
	return m.Playlists, nil
}

// SearchCalls returns the recorded search queries.
func (m *Mock) SearchCalls() []SearchQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SearchQuery(nil), m.searchCalls...)
}

// PlaybackCalls returns the recorded playback requests.
func (m *Mock) PlaybackCalls() []PlaybackRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PlaybackRequest(nil), m.playbackCalls...)
}

// PlaylistTracksCalls returns the recorded playlist track fetches.
func (m *Mock) PlaylistTracksCalls() []PlaylistTracksCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]PlaylistTracksCall(nil), m.tracksCalls...)
}

// DevicesCalls returns how many times Devices was called.
func (m *Mock) DevicesCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.devicesCalls
}
