// The read goroutine listens to server frames and fans decoded chat updates
// out to subscriptions. The write goroutine drains the outbound queue into
// the connection, keeping a single writer per gorilla/websocket requirements.
// Separating read/write avoids head-of-line blocking when the server is slow.

package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/models"
	"github.com/gorilla/websocket"
)

// Subscription delivers server-confirmed chat updates to one consumer.
// A slow consumer never blocks the transport: updates that cannot be
// delivered immediately are dropped, the next newMessage carries the full
// chat anyway.
type Subscription struct {
	ch     chan models.Chat
	once   sync.Once
	cancel func(*Subscription)
}

// Updates returns the channel of chat updates. The channel is closed when
// the subscription or the whole transport is closed.
func (s *Subscription) Updates() <-chan models.Chat {
	return s.ch
}

// Close detaches the subscription from the transport and closes its channel.
// Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel(s)
		}
		close(s.ch)
	})
}

type wsRealtime struct {
	cfg    config.ClientRealtime
	logger *logger.Logger

	conn *websocket.Conn
	send chan models.Envelope
	done chan struct{}

	closeOnce sync.Once

	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// NewWebsocketRealtime constructs a websocket implementation of [Realtime].
// The endpoint is not dialed until Connect is called.
func NewWebsocketRealtime(cfg config.ClientRealtime, log *logger.Logger) Realtime {
	return &wsRealtime{
		cfg:    cfg,
		logger: log,
		send:   make(chan models.Envelope, 16),
		done:   make(chan struct{}),
		subs:   make(map[*Subscription]struct{}),
	}
}

// Connect implements [Realtime].
func (r *wsRealtime) Connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: r.cfg.HandshakeTimeout}

	conn, _, err := dialer.DialContext(ctx, r.cfg.URL, nil)
	if err != nil {
		return fmt.Errorf("dial realtime endpoint %s: %w", r.cfg.URL, err)
	}
	r.conn = conn

	// Diagnostic only; nothing is keyed off the connect event.
	r.logger.Info().Str("url", r.cfg.URL).Msg("realtime connected")

	go r.readPump()
	go r.writePump()

	return nil
}

// RegisterUser implements [Realtime]. The event data is the bare identity id,
// matching the backend's registerUser contract.
func (r *wsRealtime) RegisterUser(userID string) error {
	if r.conn == nil {
		return ErrNotConnected
	}

	data, err := json.Marshal(userID)
	if err != nil {
		return fmt.Errorf("encode register event: %w", err)
	}

	select {
	case r.send <- models.Envelope{Event: models.EventRegisterUser, Data: data}:
		return nil
	case <-r.done:
		return ErrClosed
	}
}

// Subscribe implements [Realtime].
func (r *wsRealtime) Subscribe() *Subscription {
	sub := &Subscription{
		ch:     make(chan models.Chat, 8),
		cancel: r.unsubscribe,
	}

	r.mu.Lock()
	r.subs[sub] = struct{}{}
	r.mu.Unlock()

	return sub
}

func (r *wsRealtime) unsubscribe(sub *Subscription) {
	r.mu.Lock()
	delete(r.subs, sub)
	r.mu.Unlock()
}

// Close implements [Realtime]. Safe to call more than once.
func (r *wsRealtime) Close() error {
	r.closeOnce.Do(func() {
		close(r.done)
		if r.conn != nil {
			_ = r.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			_ = r.conn.Close()
		}

		r.mu.Lock()
		subs := make([]*Subscription, 0, len(r.subs))
		for sub := range r.subs {
			subs = append(subs, sub)
		}
		r.subs = make(map[*Subscription]struct{})
		r.mu.Unlock()

		for _, sub := range subs {
			sub.Close()
		}
	})

	return nil
}

func (r *wsRealtime) readPump() {
	defer func() { _ = r.Close() }()

	for {
		var env models.Envelope
		if err := r.conn.ReadJSON(&env); err != nil {
			select {
			case <-r.done:
				// expected during shutdown
			default:
				r.logger.Error().Err(err).Msg("realtime read failed")
			}
			return
		}

		switch env.Event {
		case models.EventNewMessage:
			var chat models.Chat
			if err := json.Unmarshal(env.Data, &chat); err != nil {
				r.logger.Error().Err(err).Msg("decode newMessage event")
				continue
			}
			r.broadcast(chat)
		default:
			r.logger.Debug().Str("event", env.Event).Msg("ignoring unknown realtime event")
		}
	}
}

func (r *wsRealtime) broadcast(chat models.Chat) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for sub := range r.subs {
		select {
		case sub.ch <- chat:
		default:
			r.logger.Warn().Str("chat_id", chat.ID).Msg("subscriber is slow, dropping update")
		}
	}
}

func (r *wsRealtime) writePump() {
	for {
		select {
		case env := <-r.send:
			if err := r.conn.WriteJSON(env); err != nil {
				r.logger.Error().Err(err).Str("event", env.Event).Msg("realtime write failed")
				_ = r.Close()
				return
			}
		case <-r.done:
			return
		}
	}
}
