package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// newTestRealtime поднимает websocket-сервер и подключённый к нему транспорт
func newTestRealtime(t *testing.T, handler func(conn *websocket.Conn)) Realtime {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		handler(conn)
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	rt := NewWebsocketRealtime(config.ClientRealtime{URL: wsURL, HandshakeTimeout: time.Second}, logger.Nop())
	require.NoError(t, rt.Connect(context.Background()))
	t.Cleanup(func() { _ = rt.Close() })

	return rt
}

func TestRegisterUser_SendsBareUserID(t *testing.T) {
	received := make(chan models.Envelope, 1)

	rt := newTestRealtime(t, func(conn *websocket.Conn) {
		var env models.Envelope
		if err := conn.ReadJSON(&env); err == nil {
			received <- env
		}
	})

	require.NoError(t, rt.RegisterUser("u1"))

	select {
	case env := <-received:
		assert.Equal(t, models.EventRegisterUser, env.Event)

		var userID string
		require.NoError(t, json.Unmarshal(env.Data, &userID))
		assert.Equal(t, "u1", userID)
	case <-time.After(2 * time.Second):
		t.Fatal("registerUser frame was not received")
	}
}

func TestRegisterUser_NotConnected(t *testing.T) {
	rt := NewWebsocketRealtime(config.ClientRealtime{URL: "ws://127.0.0.1:1"}, logger.Nop())

	err := rt.RegisterUser("u1")

	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestSubscribe_ReceivesNewMessageEvents(t *testing.T) {
	chat := models.Chat{
		ID: "c1",
		Messages: []models.Message{
			{ID: "m1", Text: "hi", SenderID: "u2", CreatedAt: time.Now().UTC().Truncate(time.Second)},
		},
	}

	rt := newTestRealtime(t, func(conn *websocket.Conn) {
		data, _ := json.Marshal(chat)
		_ = conn.WriteJSON(models.Envelope{Event: models.EventNewMessage, Data: data})
	})

	sub := rt.Subscribe()
	defer sub.Close()

	select {
	case got := <-sub.Updates():
		assert.Equal(t, "c1", got.ID)
		require.Len(t, got.Messages, 1)
		assert.Equal(t, "hi", got.Messages[0].Text)
	case <-time.After(2 * time.Second):
		t.Fatal("newMessage update was not delivered")
	}
}

func TestSubscribe_UnknownEventsIgnored(t *testing.T) {
	rt := newTestRealtime(t, func(conn *websocket.Conn) {
		_ = conn.WriteJSON(models.Envelope{Event: "presence", Data: json.RawMessage(`{}`)})

		data, _ := json.Marshal(models.Chat{ID: "c2"})
		_ = conn.WriteJSON(models.Envelope{Event: models.EventNewMessage, Data: data})
	})

	sub := rt.Subscribe()
	defer sub.Close()

	select {
	case got := <-sub.Updates():
		// the unknown event is skipped, the next newMessage still arrives
		assert.Equal(t, "c2", got.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("newMessage update was not delivered")
	}
}

func TestSubscriptionClose_StopsDelivery(t *testing.T) {
	rt := newTestRealtime(t, func(conn *websocket.Conn) {
		// keep the connection open
		time.Sleep(100 * time.Millisecond)
	})

	sub := rt.Subscribe()
	sub.Close()
	sub.Close() // double close is safe

	_, ok := <-sub.Updates()
	assert.False(t, ok, "channel must be closed after Close")
}

func TestClose_ClosesAllSubscriptions(t *testing.T) {
	rt := newTestRealtime(t, func(conn *websocket.Conn) {
		time.Sleep(100 * time.Millisecond)
	})

	sub := rt.Subscribe()
	require.NoError(t, rt.Close())

	select {
	case _, ok := <-sub.Updates():
		assert.False(t, ok, "channel must be closed after transport Close")
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not closed")
	}
}
