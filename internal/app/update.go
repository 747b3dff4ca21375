// internal/app/update.go
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/spotui/internal/dispatch"
	"github.com/llehouerou/spotui/internal/keymap"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ResultMsg:
		m.Dispatcher.Apply(msg.Result, m.State)
		m.inFlight = false
		m.syncSongView()
		return m.drainPending()

	case spinner.TickMsg:
		if !m.inFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.syncSongView()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, key := range m.classify(msg) {
		if m.inFlight {
			// Quitting never waits for the service.
			if key.Action == keymap.ActionQuit {
				return m, m.quit()
			}
			m.pending = append(m.pending, key)
			continue
		}
		if cmd := m.step(key); cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.quitting {
			break
		}
	}
	return m, tea.Batch(cmds...)
}

// classify turns a key message into the keys it carries. The terminal may
// group several typed characters into one message; each becomes its own key.
// A paste stays whole and carries no action.
func (m Model) classify(msg tea.KeyMsg) []keymap.Key {
	if msg.Paste {
		return []keymap.Key{{Name: msg.String(), Runes: string(msg.Runes)}}
	}
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 1 {
		keys := make([]keymap.Key, len(msg.Runes))
		for i, r := range msg.Runes {
			keys[i] = m.Keys.Classify(string(r))
		}
		return keys
	}
	return []keymap.Key{m.Keys.Classify(msg.String())}
}

// drainPending replays queued keys until one of them starts a new request.
func (m Model) drainPending() (tea.Model, tea.Cmd) {
	for len(m.pending) > 0 && !m.inFlight {
		key := m.pending[0]
		m.pending = m.pending[1:]
		if cmd := m.step(key); cmd != nil {
			return m, cmd
		}
	}
	return m, nil
}

// step applies one key to the state. It returns a command when the key quits
// or starts a request.
func (m *Model) step(key keymap.Key) tea.Cmd {
	res := Handle(key, m.State)
	m.Log.Debug().
		Str("key", key.Name).
		Str("action", string(key.Action)).
		Stringer("block", m.State.Active).
		Bool("handled", res.Handled).
		Msg("key")

	if res.Exit {
		return m.quit()
	}
	m.syncSongView()
	if res.Request == nil {
		return nil
	}
	m.inFlight = true
	return tea.Batch(m.execute(res.Request), m.Spinner.Tick)
}

func (m *Model) execute(req dispatch.Request) tea.Cmd {
	ctx, d, log := m.ctx, m.Dispatcher, m.Log
	return func() tea.Msg {
		log.Debug().Str("request", requestName(req)).Msg("executing request")
		return ResultMsg{Result: d.Execute(ctx, req)}
	}
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.cancel()
	return tea.Quit
}

func (m *Model) syncSongView() {
	m.songView.Jump(m.State.SelectedSong, len(m.State.SongTable), m.songTableRows())
}

func requestName(req dispatch.Request) string {
	switch req.(type) {
	case dispatch.Search:
		return "search"
	case dispatch.FetchPlaylistTracks:
		return "playlist_tracks"
	case dispatch.StartPlayback:
		return "start_playback"
	case dispatch.FetchDevices:
		return "devices"
	case dispatch.LoadPlaylists:
		return "playlists"
	}
	return "unknown"
}
