package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid API adapter settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidRealtimeConfigs indicates invalid push channel settings
	// (for example, an empty websocket URL).
	ErrInvalidRealtimeConfigs = errors.New("invalid realtime configuration")
)
