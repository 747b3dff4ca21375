// internal/app/handlers_device.go
package app

import (
	"github.com/llehouerou/spotui/internal/app/handler"
	"github.com/llehouerou/spotui/internal/keymap"
	"github.com/llehouerou/spotui/internal/state"
)

func handleSelectDevice(key keymap.Key, s *state.State) handler.Result {
	return handler.Chain(
		func() handler.Result { return handleQuitKeys(key) },
		func() handler.Result { return handleBackKey(key, s) },
		func() handler.Result { return handleDeviceNav(key, s) },
	)
}

func handleDeviceNav(key keymap.Key, s *state.State) handler.Result {
	//nolint:exhaustive // only navigation keys apply here
	switch key.Action {
	case keymap.ActionMoveDown:
		if s.Devices.Selection.IsSet() {
			s.Devices.Next()
		}
		return handler.HandledNoRequest
	case keymap.ActionMoveUp:
		if s.Devices.Selection.IsSet() {
			s.Devices.Prev()
		}
		return handler.HandledNoRequest
	case keymap.ActionSelect:
		if d, ok := s.Devices.Selected(); ok {
			s.DeviceID = d.ID
			s.Active = state.BlockMyPlaylists
		}
		return handler.HandledNoRequest
	}
	return handler.NotHandled
}
