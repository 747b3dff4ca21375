// Package handler provides the result type and chain function for block key
// handlers.
package handler

import "github.com/llehouerou/spotui/internal/dispatch"

// Result represents the outcome of a key handler. Exit asks the host loop to
// stop; Request is a side effect for the host to run.
type Result struct {
	Handled bool
	Exit    bool
	Request dispatch.Request
}

// NotHandled is returned when a handler doesn't handle the key.
var NotHandled = Result{}

// HandledNoRequest is a convenience for handlers that only mutate state.
var HandledNoRequest = Result{Handled: true}

// Quit ends the event loop.
var Quit = Result{Handled: true, Exit: true}

// Handled creates a Result indicating the key was handled with a request.
func Handled(req dispatch.Request) Result {
	return Result{Handled: true, Request: req}
}

// Handler is a function that attempts to handle a key.
type Handler func() Result

// Chain runs handlers in order until one handles the key.
func Chain(handlers ...Handler) Result {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return r
		}
	}
	return NotHandled
}
