// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the chat backend REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chat-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the chat
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges credentials for the authenticated identity via
	// POST /api/user/login. When the backend attaches a bearer token to the
	// response it is stored via SetToken for subsequent requests. Returns an
	// error if the request fails or the server responds with a non-2xx
	// status; the session is never mutated here.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Contacts fetches the list of users visible to the current identity via
	// GET /api/me/users.
	Contacts(ctx context.Context) ([]models.Contact, error)

	// GetChat fetches (or lazily creates) the conversation between the two
	// users named in req via POST /api/chat/get, including its full message
	// history.
	GetChat(ctx context.Context, req models.ChatRequest) (models.Chat, error)

	// CreateMessage asks the backend to persist a message via
	// POST /api/message/create. The acknowledgement body is not consumed;
	// the confirmed message arrives over the realtime channel.
	CreateMessage(ctx context.Context, req models.MessageCreateRequest) error
}
