// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime implements the client side of the push event channel that
// delivers chat updates outside the request/response cycle.
//
// The backend is treated as a black box: the client sends a single
// registerUser event after login and receives newMessage events carrying the
// full updated chat. Consumers read updates through a [Subscription], which
// must be closed when the owning screen is torn down.
package realtime

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/realtime_mock.go -package=mock

// Realtime defines the client side of the bidirectional push channel.
type Realtime interface {
	// Connect dials the websocket endpoint and starts the read/write pumps.
	// The connection lifecycle event is only logged; it carries no data.
	Connect(ctx context.Context) error

	// RegisterUser associates the connection with the given identity id
	// server-side. Must be called after Connect and strictly after the
	// identity has been installed into the session store, because the server
	// keys all subsequent pushes by that id.
	RegisterUser(userID string) error

	// Subscribe returns a new subscription receiving every chat update
	// pushed by the server. Callers own the subscription and must Close it.
	Subscribe() *Subscription

	// Close shuts the connection down and closes all open subscriptions.
	Close() error
}
