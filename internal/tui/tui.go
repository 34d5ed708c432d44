package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chat-client/internal/config"
	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/realtime"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/session"
	"github.com/MKhiriev/go-chat-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
	session  *session.Store
	realtime realtime.Realtime
	version  string
}

func New(services *service.ClientServices, sess *session.Store, rt realtime.Realtime, appCfg config.ClientApp, _ *logger.Logger) (*TUI, error) {
	if services == nil || sess == nil {
		return nil, fmt.Errorf("tui requires services and a session store")
	}

	return &TUI{services: services, session: sess, realtime: rt, version: appCfg.Version}, nil
}

// LoginFlow runs the login screen until the user authenticates or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"login": NewLoginModel(ctx, t.services.AuthService, t.version),
	}

	root := NewRootModel(pages, "login")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the dashboard for the authenticated user. The realtime
// subscription lives exactly as long as the screen: it is closed on teardown
// so no update can act on a dismissed dashboard.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	sub := t.realtime.Subscribe()
	defer sub.Close()

	model := newDashboardModel(ctx, t.services, t.session, sub.Updates())
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
