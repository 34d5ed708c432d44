package service

import "errors"

var (
	// ErrEmptyCredentials is a validation failure: it is returned before any
	// network call is made.
	ErrEmptyCredentials = errors.New("email and password are required")

	// ErrEmptyMessage is a validation failure for whitespace-only message
	// text.
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrLogin covers rejected credentials and an unreachable server alike;
	// the session store is left untouched when it is returned.
	ErrLogin = errors.New("login failed")

	ErrFetchContacts = errors.New("error fetching contacts")
	ErrFetchChat     = errors.New("error fetching chat")
	ErrSendMessage   = errors.New("error sending message")
)
