package models

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChatRequest is the body of POST /api/chat/get. The backend returns the
// existing chat between the two users or creates an empty one.
type ChatRequest struct {
	FirstUserID  string `json:"firstUserId"`
	SecondUserID string `json:"secondUserId"`
}

// MessageCreateRequest is the body of POST /api/message/create. The "id"
// field is the chat id, matching the backend's route contract.
type MessageCreateRequest struct {
	ChatID string `json:"id"`
	Text   string `json:"message"`
	UserID string `json:"userId"`
}
