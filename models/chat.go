package models

import "time"

// Chat is the ordered message thread between exactly two users. It is fetched
// lazily when a contact is selected; at most one chat is active in the UI at
// a time.
type Chat struct {
	ID       string    `json:"_id"`
	UserIDs  []string  `json:"users"`
	Messages []Message `json:"messages"`
}

// Message is a single chat entry. Ordering is insertion order within a chat:
// once appended, a message is never reordered or removed locally.
type Message struct {
	ID        string    `json:"_id"`
	Text      string    `json:"message"`
	SenderID  string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`

	// Pending marks a locally constructed optimistic message that has not yet
	// been confirmed by the server. Never serialised.
	Pending bool `json:"-"`
}
