package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/mock"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestChatSvc(t *testing.T, ctrl *gomock.Controller) (ClientChatService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientChatService(mockAdapter, logger.Nop()), mockAdapter
}

// ── Contacts ─────────────────────────────────────────────────────────────────

func TestClientChatService_Contacts_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Contact{{ID: "u2", Username: "bob"}}
	mockAdapter.EXPECT().Contacts(ctx).Return(want, nil)

	got, err := svc.Contacts(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientChatService_Contacts_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Contacts(ctx).Return(nil, errors.New("connection refused"))

	_, err := svc.Contacts(ctx)

	assert.ErrorIs(t, err, ErrFetchContacts)
}

// ── OpenChat ─────────────────────────────────────────────────────────────────

func TestClientChatService_OpenChat_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	want := models.Chat{ID: "c1", UserIDs: []string{"u1", "u2"}}
	mockAdapter.EXPECT().
		GetChat(ctx, models.ChatRequest{FirstUserID: "u1", SecondUserID: "u2"}).
		Return(want, nil)

	got, err := svc.OpenChat(ctx, "u1", "u2")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientChatService_OpenChat_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetChat(ctx, gomock.Any()).Return(models.Chat{}, errors.New("boom"))

	_, err := svc.OpenChat(ctx, "u1", "u2")

	assert.ErrorIs(t, err, ErrFetchChat)
}

// ── SendMessage ──────────────────────────────────────────────────────────────

func TestClientChatService_SendMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().
		CreateMessage(ctx, models.MessageCreateRequest{ChatID: "c1", Text: "hi", UserID: "u1"}).
		Return(nil)

	err := svc.SendMessage(ctx, "c1", "hi", "u1")

	require.NoError(t, err)
}

func TestClientChatService_SendMessage_WhitespaceOnly_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Моки без ожиданий: любой сетевой вызов провалит тест
	svc, _ := newTestChatSvc(t, ctrl)

	err := svc.SendMessage(context.Background(), "c1", "   \t ", "u1")

	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestClientChatService_SendMessage_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestChatSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CreateMessage(ctx, gomock.Any()).Return(errors.New("http 500"))

	err := svc.SendMessage(ctx, "c1", "hi", "u1")

	assert.ErrorIs(t, err, ErrSendMessage)
}
