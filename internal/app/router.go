// internal/app/router.go
package app

import (
	"github.com/llehouerou/spotui/internal/app/handler"
	"github.com/llehouerou/spotui/internal/keymap"
	"github.com/llehouerou/spotui/internal/state"
)

// Handle routes a classified key to the handler of the active block. Only
// that handler runs; it mutates s in place and may return a request for the
// host loop to execute.
func Handle(key keymap.Key, s *state.State) handler.Result {
	switch s.Active {
	case state.BlockInput:
		return handleInput(key, s)
	case state.BlockMyPlaylists:
		return handlePlaylists(key, s)
	case state.BlockSongTable:
		return handleSongTable(key, s)
	case state.BlockSearchResults:
		return handleSearchResults(key, s)
	case state.BlockHelpMenu, state.BlockAPIError:
		return handleMenu(key, s)
	case state.BlockSelectDevice:
		return handleSelectDevice(key, s)
	}
	return handler.NotHandled
}
