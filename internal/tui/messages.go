package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-chat-client/models"
)

// NavigateTo switches the root router to another page. Payload, when set, is
// delivered to the target page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is the outcome of an authentication attempt.
type LoginResult struct {
	Err  error
	User models.User
}
