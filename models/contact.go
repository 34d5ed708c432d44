package models

// Contact is another user visible to the current identity for starting a
// conversation. Contacts are fetched as an immutable snapshot per request and
// have no independent lifecycle on the client.
type Contact struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}
