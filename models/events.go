package models

import "encoding/json"

// Realtime event names exchanged over the websocket channel.
const (
	// EventRegisterUser is emitted by the client right after login; its data
	// is the bare user id string. The server keys all future pushes to this
	// connection by that id.
	EventRegisterUser = "registerUser"

	// EventNewMessage is emitted by the server when a chat gains a message;
	// its data is the full updated Chat.
	EventNewMessage = "newMessage"
)

// Envelope is the wire frame for every realtime event in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}
