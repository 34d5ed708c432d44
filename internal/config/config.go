// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the chat
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the client version string.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the backend REST API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Realtime holds settings for the push event channel.
	Realtime Realtime `envPrefix:"REALTIME_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client
	// (e.g. "1.2.3"). Shown on the login screen.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the chat backend REST API
	// (e.g. "http://localhost:5000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Realtime holds settings for the websocket push channel.
type Realtime struct {
	// URL is the websocket endpoint delivering push events
	// (e.g. "ws://localhost:5000/ws"). Falls back to a local default when
	// unset.
	// Env: REALTIME_URL
	URL string `env:"URL"`

	// HandshakeTimeout bounds the websocket dial, defaulting to the adapter
	// request timeout when zero.
	// Env: REALTIME_HANDSHAKE_TIMEOUT
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT"`
}
