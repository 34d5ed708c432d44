package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
)

type clientChatService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientChatService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientChatService {
	return &clientChatService{adapter: serverAdapter, logger: log}
}

// Contacts implements [ClientChatService].
func (c *clientChatService) Contacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := c.adapter.Contacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchContacts, err)
	}

	return contacts, nil
}

// OpenChat implements [ClientChatService].
func (c *clientChatService) OpenChat(ctx context.Context, firstUserID, secondUserID string) (models.Chat, error) {
	chat, err := c.adapter.GetChat(ctx, models.ChatRequest{
		FirstUserID:  firstUserID,
		SecondUserID: secondUserID,
	})
	if err != nil {
		return models.Chat{}, fmt.Errorf("%w: %v", ErrFetchChat, err)
	}

	return chat, nil
}

// SendMessage implements [ClientChatService].
func (c *clientChatService) SendMessage(ctx context.Context, chatID, text, senderID string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	err := c.adapter.CreateMessage(ctx, models.MessageCreateRequest{
		ChatID: chatID,
		Text:   text,
		UserID: senderID,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendMessage, err)
	}

	return nil
}
