// internal/app/messages.go
package app

import "github.com/llehouerou/spotui/internal/dispatch"

// ResultMsg carries the outcome of a service request back to the event loop.
type ResultMsg struct {
	Result dispatch.Result
}
