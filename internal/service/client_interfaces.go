// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-chat-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for authentication.
// Implementations own the login side-effect ordering: the identity is
// installed into the session store strictly before the realtime registration
// signal is sent, because the server keys future pushes by that id.
type ClientAuthService interface {
	// Login validates the credentials, exchanges them for an identity via
	// the backend, installs the identity into the session store, and
	// registers it with the realtime transport.
	//
	// Empty email or password returns ErrEmptyCredentials without any
	// network call. A rejected or failed login returns a wrapped ErrLogin
	// and leaves the session store untouched. Each attempt is independent:
	// repeating a successful login simply reinstalls the same identity.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Logout clears the session store. The realtime connection stays up;
	// the server simply stops having a registered identity for it.
	Logout()
}

// ClientChatService defines the client-side contract for the contact list
// and conversations. All methods are thin orchestrations over the server
// adapter; state lives in the UI layer.
type ClientChatService interface {
	// Contacts fetches the contact list scoped to the current identity.
	Contacts(ctx context.Context) ([]models.Contact, error)

	// OpenChat fetches (or lazily creates) the conversation between the two
	// given users, including its message history.
	OpenChat(ctx context.Context, firstUserID, secondUserID string) (models.Chat, error)

	// SendMessage asks the backend to persist a message. Whitespace-only
	// text returns ErrEmptyMessage without a network call. The call does
	// not return the stored message: the confirmed state arrives via the
	// realtime channel.
	SendMessage(ctx context.Context, chatID, text, senderID string) error
}
