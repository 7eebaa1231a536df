package state

import "sysdash/internal/output"

// AppState holds the latest frame received from the refresh loop.
type AppState struct {
	Frame output.Frame
}

// Ready reports whether a frame has arrived yet.
func (s AppState) Ready() bool {
	return s.Frame.Ready()
}
