// internal/app/handlers.go
package app

import (
	"github.com/llehouerou/spotui/internal/app/handler"
	"github.com/llehouerou/spotui/internal/dispatch"
	"github.com/llehouerou/spotui/internal/keymap"
	"github.com/llehouerou/spotui/internal/state"
)

// handleQuitKeys handles q and ctrl+c.
func handleQuitKeys(key keymap.Key) handler.Result {
	if key.Action != keymap.ActionQuit {
		return handler.NotHandled
	}
	return handler.Quit
}

// handleDevicesKey opens the device picker once the device list arrives.
func handleDevicesKey(key keymap.Key) handler.Result {
	if key.Action != keymap.ActionDevices {
		return handler.NotHandled
	}
	return handler.Handled(dispatch.FetchDevices{})
}

func handleHelpKey(key keymap.Key, s *state.State) handler.Result {
	if key.Action != keymap.ActionHelp {
		return handler.NotHandled
	}
	s.Active = state.BlockHelpMenu
	return handler.HandledNoRequest
}

func handleSearchKey(key keymap.Key, s *state.State) handler.Result {
	if key.Action != keymap.ActionSearch {
		return handler.NotHandled
	}
	s.Active = state.BlockInput
	return handler.HandledNoRequest
}

func handleBackKey(key keymap.Key, s *state.State) handler.Result {
	if key.Action != keymap.ActionBack {
		return handler.NotHandled
	}
	s.Active = state.BlockMyPlaylists
	return handler.HandledNoRequest
}

// handleMenu handles the help and error screens, which only lead back.
func handleMenu(key keymap.Key, s *state.State) handler.Result {
	return handler.Chain(
		func() handler.Result { return handleQuitKeys(key) },
		func() handler.Result { return handleDevicesKey(key) },
		func() handler.Result { return handleBackKey(key, s) },
	)
}
