package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/realtime"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/tui"
)

// App runs the interactive chat client: the login flow first, then the
// dashboard until the user quits. A logout from the dashboard returns to the
// login screen with the same process still running.
type App struct {
	services *service.ClientServices
	realtime realtime.Realtime
	tui      *tui.TUI
	log      *logger.Logger
}

func NewApp(services *service.ClientServices, rt realtime.Realtime, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || rt == nil || ui == nil {
		return nil, fmt.Errorf("client app requires services, realtime and ui")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{services: services, realtime: rt, tui: ui, log: log}, nil
}

// Run implements [Client].
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.realtime.Connect(ctx); err != nil {
		// доставка новых сообщений отключена, HTTP продолжает работать
		a.log.Warn().Err(err).Msg("realtime connection failed, live updates disabled")
	}
	defer func() {
		if err := a.realtime.Close(); err != nil {
			a.log.Warn().Err(err).Msg("realtime close failed")
		}
	}()

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.log.Info().Str("user_id", user.ID).Msg("user authenticated")

		logout, err := a.tui.MainLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.log.Info().Msg("user logged out")
	}
}
