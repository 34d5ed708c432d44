package service

import (
	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/realtime"
	"github.com/MKhiriev/go-chat-client/internal/session"
)

type ClientServices struct {
	AuthService ClientAuthService
	ChatService ClientChatService
}

func NewClientServices(sess *session.Store, serverAdapter adapter.ServerAdapter, rt realtime.Realtime, log *logger.Logger) (*ClientServices, error) {
	authSvc, err := NewClientAuthService(sess, serverAdapter, rt, log)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		AuthService: authSvc,
		ChatService: NewClientChatService(serverAdapter, log),
	}, nil
}
