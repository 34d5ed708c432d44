package config

import (
	"fmt"
	"time"
)

// Client defaults used when neither environment, flags, nor the JSON file
// provide a value. The realtime URL fallback mirrors the backend's local
// development endpoint.
const (
	DefaultHTTPAddress    = "http://localhost:5000"
	DefaultRealtimeURL    = "ws://localhost:5000/ws"
	DefaultRequestTimeout = 15 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string shown on the login screen.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the REST API base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientRealtime holds push channel settings used by the realtime transport.
type ClientRealtime struct {
	// URL is the websocket endpoint delivering push events.
	URL string
	// HandshakeTimeout bounds the websocket dial.
	HandshakeTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains REST API addresses and timeouts.
	Adapter ClientAdapter
	// Realtime contains push channel settings.
	Realtime ClientRealtime
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
//
// It merges environment variables, command-line flags and the optional JSON
// file via the config builder, applies client defaults for anything still
// unset, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Realtime: ClientRealtime{
			URL:              cfg.Realtime.URL,
			HandshakeTimeout: cfg.Realtime.HandshakeTimeout,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Realtime.URL == "" {
		cfg.Realtime.URL = DefaultRealtimeURL
	}
	if cfg.Realtime.HandshakeTimeout <= 0 {
		cfg.Realtime.HandshakeTimeout = cfg.Adapter.RequestTimeout
	}
}
