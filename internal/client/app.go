package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/service"
	"github.com/readreview/book-stack/internal/tui"
)

// App ties the client services and the terminal UI together. It satisfies
// [Client].
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp constructs the client application from pre-wired services and UI.
func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}

	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run starts the authentication flow followed by the catalogue loop. A
// logout returns to the authentication flow; quitting either flow exits.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}

		a.logger.Info().Int64("user_id", user.UserID).Msg("signed in")

		logout, err := a.tui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.services.AuthService.Logout()
		a.logger.Info().Msg("signed out")
	}
}
