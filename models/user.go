package models

// User represents the authenticated account entity returned by the chat
// backend. It is the identity held by the session store for the lifetime of
// the process; all other components receive it by value and never mutate it.
type User struct {
	// ID is the backend-assigned user identifier.
	// The backend serialises it under the "_id" key.
	ID string `json:"_id"`

	// Username is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Username string `json:"username"`

	// Email is the unique login identifier of the user.
	// Used during authentication only.
	Email string `json:"email"`
}
