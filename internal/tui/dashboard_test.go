package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/mock"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDashboard создаёт модель главного экрана с авторизованным пользователем
// и замоканными сервисами.
func newTestDashboard(t *testing.T) (dashboardModel, *mock.MockClientChatService, *mock.MockClientAuthService, chan models.Chat) {
	t.Helper()

	ctrl := gomock.NewController(t)
	chatSvc := mock.NewMockClientChatService(ctrl)
	authSvc := mock.NewMockClientAuthService(ctrl)

	sess := session.NewStore()
	sess.Set(models.User{ID: "me", Username: "self", Email: "self@example.com"})

	updates := make(chan models.Chat, 1)
	services := &service.ClientServices{AuthService: authSvc, ChatService: chatSvc}

	return newDashboardModel(context.Background(), services, sess, updates), chatSvc, authSvc, updates
}

func testContacts() []models.Contact {
	return []models.Contact{
		{ID: "alice", Username: "alice"},
		{ID: "bob", Username: "bob"},
	}
}

// withContacts прогоняет через модель загруженный список контактов.
func withContacts(t *testing.T, m dashboardModel, contacts []models.Contact) dashboardModel {
	t.Helper()

	updated, _ := m.Update(contactsLoadedMsg{contacts: contacts})
	return updated.(dashboardModel)
}

// ── Список контактов ──

func TestDashboard_ContactsLoaded(t *testing.T) {
	m, _, _, _ := newTestDashboard(t)

	got := withContacts(t, m, testContacts())

	assert.False(t, got.loading)
	assert.Len(t, got.contacts, 2)
	assert.Empty(t, got.errMsg)
}

func TestDashboard_ContactsLoadError_Humanized(t *testing.T) {
	m, _, _, _ := newTestDashboard(t)

	updated, _ := m.Update(contactsLoadedMsg{err: errors.New("dial tcp: connection refused")})

	got := updated.(dashboardModel)
	assert.False(t, got.loading)
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", got.errMsg)
}

func TestDashboard_RetryReloadsContacts(t *testing.T) {
	m, chatSvc, _, _ := newTestDashboard(t)
	m = withContacts(t, m, nil)

	chatSvc.EXPECT().Contacts(gomock.Any()).Return(testContacts(), nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)
	assert.True(t, updated.(dashboardModel).loading)

	result, ok := cmd().(contactsLoadedMsg)
	require.True(t, ok)
	require.NoError(t, result.err)
	assert.Len(t, result.contacts, 2)
}

func TestDashboard_WithoutSessionUser_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatSvc := mock.NewMockClientChatService(ctrl)
	authSvc := mock.NewMockClientAuthService(ctrl)
	services := &service.ClientServices{AuthService: authSvc, ChatService: chatSvc}

	// пустое хранилище сессии: пользователь не вошёл
	m := newDashboardModel(context.Background(), services, session.NewStore(), nil)

	require.False(t, m.hasUser)

	result, ok := m.cmdLoadContacts()().(contactsLoadedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, result.err, errIdentityNotSet)
}

// ── Выбор контакта и устаревшие ответы ──

func TestDashboard_SelectContact_OpensChat(t *testing.T) {
	m, chatSvc, _, _ := newTestDashboard(t)
	m = withContacts(t, m, testContacts())

	chatSvc.EXPECT().
		OpenChat(gomock.Any(), "me", "alice").
		Return(models.Chat{ID: "chat-1", Messages: []models.Message{{ID: "m1", Text: "привет", SenderID: "alice"}}}, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	got := updated.(dashboardModel)
	assert.True(t, got.opening)
	assert.Equal(t, "alice", got.selectedContactID)

	loaded, ok := cmd().(chatLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)

	final, _ := got.Update(loaded)
	gotFinal := final.(dashboardModel)
	require.NotNil(t, gotFinal.chat)
	assert.Equal(t, "chat-1", gotFinal.chat.ID)
	assert.Len(t, gotFinal.messages, 1)
}

func TestDashboard_StaleChatResponse_Dropped(t *testing.T) {
	m, _, _, _ := newTestDashboard(t)
	m = withContacts(t, m, testContacts())
	m.selectedContactID = "bob"
	m.opening = true

	// медленный ответ для ранее выбранного контакта приходит после переключения
	updated, cmd := m.Update(chatLoadedMsg{
		contactID: "alice",
		chat:      models.Chat{ID: "chat-alice", Messages: []models.Message{{ID: "m1", Text: "старое"}}},
	})

	got := updated.(dashboardModel)
	assert.Nil(t, cmd)
	assert.Nil(t, got.chat)
	assert.True(t, got.opening)

	updated, _ = got.Update(chatLoadedMsg{
		contactID: "bob",
		chat:      models.Chat{ID: "chat-bob", Messages: []models.Message{{ID: "m2", Text: "актуальное"}}},
	})

	got = updated.(dashboardModel)
	require.NotNil(t, got.chat)
	assert.Equal(t, "chat-bob", got.chat.ID)
	assert.Equal(t, "актуальное", got.messages[0].Text)
	assert.False(t, got.opening)
}

// ── Отправка сообщений ──

func openedDashboard(t *testing.T, m dashboardModel) dashboardModel {
	t.Helper()

	m = withContacts(t, m, testContacts())
	m.selectedContactID = "alice"
	updated, _ := m.Update(chatLoadedMsg{contactID: "alice", chat: models.Chat{ID: "chat-1"}})
	m = updated.(dashboardModel)
	m.focus = focusInput
	return m
}

func TestDashboard_Send_AppendsPendingAndClearsInput(t *testing.T) {
	m, chatSvc, _, _ := newTestDashboard(t)
	m = openedDashboard(t, m)
	m.input.SetValue("привет, это я")

	chatSvc.EXPECT().SendMessage(gomock.Any(), "chat-1", "привет, это я", "me").Return(nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	// сообщение в истории и поле очищено ещё до ответа сервера
	got := updated.(dashboardModel)
	require.Len(t, got.messages, 1)
	assert.Equal(t, "привет, это я", got.messages[0].Text)
	assert.Equal(t, "me", got.messages[0].SenderID)
	assert.True(t, got.messages[0].Pending)
	assert.NotEmpty(t, got.messages[0].ID)
	assert.Empty(t, got.input.Value())

	done, ok := cmd().(sendDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)
}

func TestDashboard_SendWhitespaceOnly_NoOp(t *testing.T) {
	m, _, _, _ := newTestDashboard(t)
	m = openedDashboard(t, m)
	m.input.SetValue("   \t")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := updated.(dashboardModel)
	assert.Nil(t, cmd)
	assert.Empty(t, got.messages)
	assert.Equal(t, "   \t", got.input.Value())
}

func TestDashboard_SendFailure_ShowsErrorKeepsMessage(t *testing.T) {
	m, _, _, _ := newTestDashboard(t)
	m = openedDashboard(t, m)
	m.messages = []models.Message{{ID: "tmp-1", Text: "не дошло", SenderID: "me", Pending: true}}

	updated, _ := m.Update(sendDoneMsg{err: errors.New("500 internal server error")})

	got := updated.(dashboardModel)
	assert.Contains(t, got.errMsg, "Ошибка отправки")
	require.Len(t, got.messages, 1)
	assert.True(t, got.messages[0].Pending)
}

// ── Обновления в реальном времени ──

func TestDashboard_Push_ReplacesHistoryAndClearsPending(t *testing.T) {
	m, _, _, _ := newTestDashboard(t)
	m = openedDashboard(t, m)
	m.messages = []models.Message{{ID: "tmp-1", Text: "привет", SenderID: "me", Pending: true}}

	server := models.Chat{ID: "chat-1", Messages: []models.Message{
		{ID: "srv-1", Text: "привет", SenderID: "me", CreatedAt: time.Now()},
		{ID: "srv-2", Text: "и тебе привет", SenderID: "alice", CreatedAt: time.Now()},
	}}

	updated, cmd := m.Update(chatPushedMsg{chat: server, ok: true})

	got := updated.(dashboardModel)
	require.Len(t, got.messages, 2)
	assert.Equal(t, "srv-1", got.messages[0].ID)
	assert.Equal(t, "srv-2", got.messages[1].ID)
	for _, message := range got.messages {
		assert.False(t, message.Pending)
	}
	assert.NotNil(t, cmd, "модель продолжает ждать следующее событие")
}

func TestDashboard_PushForAnotherChat_Ignored(t *testing.T) {
	m, _, _, _ := newTestDashboard(t)
	m = openedDashboard(t, m)
	m.messages = []models.Message{{ID: "m1", Text: "старое", SenderID: "alice"}}

	other := models.Chat{ID: "chat-999", Messages: []models.Message{{ID: "x", Text: "чужое"}}}

	updated, cmd := m.Update(chatPushedMsg{chat: other, ok: true})

	got := updated.(dashboardModel)
	require.Len(t, got.messages, 1)
	assert.Equal(t, "m1", got.messages[0].ID)
	assert.NotNil(t, cmd)
}

func TestDashboard_PushChannelClosed_StopsWaiting(t *testing.T) {
	m, _, _, _ := newTestDashboard(t)
	m = openedDashboard(t, m)

	_, cmd := m.Update(chatPushedMsg{ok: false})

	assert.Nil(t, cmd)
}

func TestDashboard_WaitPushDeliversChannelEvents(t *testing.T) {
	m, _, _, updates := newTestDashboard(t)

	updates <- models.Chat{ID: "chat-1"}

	pushed, ok := m.cmdWaitPush()().(chatPushedMsg)
	require.True(t, ok)
	assert.True(t, pushed.ok)
	assert.Equal(t, "chat-1", pushed.chat.ID)

	close(updates)
	pushed, ok = m.cmdWaitPush()().(chatPushedMsg)
	require.True(t, ok)
	assert.False(t, pushed.ok)
}

// ── Выход из аккаунта ──

func TestDashboard_Logout(t *testing.T) {
	m, _, authSvc, _ := newTestDashboard(t)
	m = withContacts(t, m, testContacts())

	authSvc.EXPECT().Logout()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	require.NotNil(t, cmd)

	got := updated.(dashboardModel)
	assert.True(t, got.logout)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ── Отображение ──

func TestDashboard_SenderAttribution(t *testing.T) {
	m, _, _, _ := newTestDashboard(t)
	m = withContacts(t, m, testContacts())

	assert.Equal(t, "Вы", m.senderName("me"))
	assert.Equal(t, "alice", m.senderName("alice"))
	assert.Equal(t, "Неизвестный", m.senderName("ghost"))
}
