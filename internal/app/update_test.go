package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/spotui/internal/dispatch"
	"github.com/llehouerou/spotui/internal/musicapi"
	"github.com/llehouerou/spotui/internal/state"
)

func newTestModel(t *testing.T) (Model, *musicapi.Mock, *dispatch.Dispatcher) {
	t.Helper()
	svc := musicapi.NewMock()
	svc.Playlists = []musicapi.Playlist{{ID: "p0", Name: "Morning"}}
	d := dispatch.New(svc, dispatch.DefaultOptions(), zerolog.Nop())
	m := New(context.Background(), d, testKeys, zerolog.Nop())
	return m, svc, d
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewStartsLoadingPlaylists(t *testing.T) {
	m, _, d := newTestModel(t)
	assert.True(t, m.Busy())
	assert.NotNil(t, m.Init())

	m, _ = update(t, m, ResultMsg{Result: d.Execute(context.Background(), dispatch.LoadPlaylists{})})

	assert.False(t, m.Busy())
	assert.Len(t, m.State.Playlists.Items, 1)
	assert.True(t, m.State.Playlists.Selection.IsSet())
}

func TestKeysQueuedWhileBusy(t *testing.T) {
	m, svc, d := newTestModel(t)
	ctx := context.Background()

	for _, msg := range []tea.Msg{
		runeKey("/"),
		runeKey("a"),
		tea.KeyMsg{Type: tea.KeyEnter},
		runeKey("x"),
	} {
		var cmd tea.Cmd
		m, cmd = update(t, m, msg)
		assert.Nil(t, cmd)
	}
	assert.Equal(t, 4, m.Pending())
	assert.Equal(t, state.BlockMyPlaylists, m.State.Active, "queued keys must not run yet")

	m, cmd := update(t, m, ResultMsg{Result: d.Execute(ctx, dispatch.LoadPlaylists{})})

	assert.NotNil(t, cmd, "enter starts the search")
	assert.True(t, m.Busy())
	assert.Equal(t, "a", m.State.Input)
	assert.Equal(t, 1, m.Pending(), "keys after the request keep waiting")

	m, cmd = update(t, m, ResultMsg{Result: d.Execute(ctx, dispatch.Search{Query: "a"})})

	assert.Nil(t, cmd)
	assert.False(t, m.Busy())
	assert.Zero(t, m.Pending())
	assert.Equal(t, state.BlockSearchResults, m.State.Active)
	assert.Equal(t, "a", m.State.Input, "x is replayed in the search results, not typed")
	assert.Len(t, svc.SearchCalls(), 4)
}

func TestQuitWhileBusy(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Zero(t, m.Pending())
}

func TestQuitWhenIdle(t *testing.T) {
	m, _, d := newTestModel(t)
	m, _ = update(t, m, ResultMsg{Result: d.Execute(context.Background(), dispatch.LoadPlaylists{})})

	_, cmd := update(t, m, runeKey("q"))

	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestIdleKeyAppliesImmediately(t *testing.T) {
	m, _, d := newTestModel(t)
	m, _ = update(t, m, ResultMsg{Result: d.Execute(context.Background(), dispatch.LoadPlaylists{})})

	m, cmd := update(t, m, runeKey("?"))

	assert.Nil(t, cmd)
	assert.Equal(t, state.BlockHelpMenu, m.State.Active)
}

func TestRequestStartsCommand(t *testing.T) {
	m, svc, d := newTestModel(t)
	svc.DeviceList = []musicapi.Device{{ID: "d0", Name: "Laptop"}}
	m, _ = update(t, m, ResultMsg{Result: d.Execute(context.Background(), dispatch.LoadPlaylists{})})

	m, cmd := update(t, m, runeKey("d"))

	require.NotNil(t, cmd)
	assert.True(t, m.Busy())
	assert.Equal(t, state.BlockMyPlaylists, m.State.Active)
	assert.Zero(t, svc.DevicesCalls(), "the request runs in the command, not in Update")
}

func TestExecuteCommandReturnsResult(t *testing.T) {
	m, svc, _ := newTestModel(t)
	svc.DeviceList = []musicapi.Device{{ID: "d0"}}

	msg := m.execute(dispatch.FetchDevices{})()

	res, ok := msg.(ResultMsg)
	require.True(t, ok)
	devices, ok := res.Result.(dispatch.DevicesResult)
	require.True(t, ok)
	assert.Len(t, devices.Devices, 1)
	assert.Equal(t, 1, svc.DevicesCalls())
}

func TestWindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
}

func idleModel(t *testing.T) Model {
	t.Helper()
	m, _, d := newTestModel(t)
	m, _ = update(t, m, ResultMsg{Result: d.Execute(context.Background(), dispatch.LoadPlaylists{})})
	return m
}

func TestGroupedRunesAreTyped(t *testing.T) {
	m := idleModel(t)
	m.State.Active = state.BlockInput

	m, _ = update(t, m, runeKey("ab"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("daft punk"), Paste: true})

	assert.Equal(t, "abdaft punk", m.State.Input)
	assert.Equal(t, state.BlockInput, m.State.Active)
}

func TestPasteNeverTriggersBindings(t *testing.T) {
	m := idleModel(t)
	m.State.Active = state.BlockInput

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q"), Paste: true})

	assert.Nil(t, cmd)
	assert.Equal(t, "q", m.State.Input)
}

func TestGroupedRunesNavigateOutsideInput(t *testing.T) {
	m := idleModel(t)
	m.State.Active = state.BlockSongTable
	m.State.SongTable = []musicapi.Track{{ID: "t0"}, {ID: "t1"}, {ID: "t2"}}

	m, _ = update(t, m, runeKey("jj"))

	assert.Equal(t, 2, m.State.SelectedSong)
}

func TestGroupedRunesStopAtQuit(t *testing.T) {
	m := idleModel(t)
	m.State.Active = state.BlockInput

	m, cmd := update(t, m, runeKey("aqb"))

	require.NotNil(t, cmd)
	assert.Equal(t, "a", m.State.Input)
}

func TestGroupedRunesQueueAfterRequest(t *testing.T) {
	m := idleModel(t)

	m, cmd := update(t, m, runeKey("d?"))

	require.NotNil(t, cmd)
	assert.True(t, m.Busy())
	assert.Equal(t, 1, m.Pending(), "? waits for the device fetch")
}
