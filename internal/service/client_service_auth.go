package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/adapter"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/realtime"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/models"
)

type clientAuthService struct {
	session  *session.Store
	adapter  adapter.ServerAdapter
	realtime realtime.Realtime
	logger   *logger.Logger
}

// NewClientAuthService wires the login flow. Constructing it without a
// session store is a programming error, reported loudly instead of deferred
// to the first request.
func NewClientAuthService(sess *session.Store, serverAdapter adapter.ServerAdapter, rt realtime.Realtime, log *logger.Logger) (ClientAuthService, error) {
	if sess == nil {
		return nil, fmt.Errorf("auth service requires a session store")
	}

	return &clientAuthService{session: sess, adapter: serverAdapter, realtime: rt, logger: log}, nil
}

// Login implements [ClientAuthService].
func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrEmptyCredentials
	}

	user, err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrLogin, err)
	}

	// The store update must precede registration: the server keys pushes for
	// this connection by the registered id.
	a.session.Set(user)

	if err = a.realtime.RegisterUser(user.ID); err != nil {
		// Not fatal: HTTP still works, only pushes are lost for this run.
		a.logger.Warn().Err(err).Str("user_id", user.ID).Msg("realtime registration failed")
	}

	a.logger.Info().Str("user_id", user.ID).Msg("logged in")
	return user, nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout() {
	a.session.Clear()
	a.logger.Info().Msg("logged out")
}
