// internal/app/model.go
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/spotui/internal/dispatch"
	"github.com/llehouerou/spotui/internal/keymap"
	"github.com/llehouerou/spotui/internal/state"
	"github.com/llehouerou/spotui/internal/ui/cursor"
	"github.com/llehouerou/spotui/internal/ui/styles"
)

// songTableMargin is the number of rows kept visible around the selection.
const songTableMargin = 2

// Model is the root bubbletea model. It owns the application state and runs
// at most one service request at a time; keys that arrive while a request
// is in flight are queued and replayed in order once its result is applied.
type Model struct {
	State      *state.State
	Keys       *keymap.Resolver
	Dispatcher *dispatch.Dispatcher
	Log        zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	inFlight bool
	quitting bool
	pending  []keymap.Key

	Spinner  spinner.Model
	songView cursor.Cursor

	Width  int
	Height int
}

// New creates the root model. The user's playlists are requested as soon as
// the program starts.
func New(ctx context.Context, d *dispatch.Dispatcher, keys *keymap.Resolver, log zerolog.Logger) Model {
	ctx, cancel := context.WithCancel(ctx)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.T().S().Playing

	return Model{
		State:      state.New(),
		Keys:       keys,
		Dispatcher: d,
		Log:        log,
		ctx:        ctx,
		cancel:     cancel,
		inFlight:   true,
		Spinner:    sp,
		songView:   cursor.New(songTableMargin),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.execute(dispatch.LoadPlaylists{}), m.Spinner.Tick)
}

// Busy reports whether a request is in flight.
func (m Model) Busy() bool {
	return m.inFlight
}

// Pending returns the number of keys waiting for the in-flight request.
func (m Model) Pending() int {
	return len(m.pending)
}
