package realtime

import "errors"

var (
	ErrNotConnected = errors.New("realtime transport not connected")
	ErrClosed       = errors.New("realtime transport closed")
)
