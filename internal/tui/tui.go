// Package tui implements the interactive terminal interface of the
// Read&Review client.
//
// The interface is built on Bubble Tea. [RootModel] routes between the
// authentication pages (menu, sign-in, registration); the catalogue runs as
// its own program in mainLoopModel. All server calls are dispatched as
// asynchronous tea commands producing the typed messages in messages.go.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/service"
	"github.com/readreview/book-stack/models"
)

// ErrUserQuit is returned by LoginFlow when the user quit before signing in.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// LoginFlow runs the authentication pages and blocks until the user has
// signed in, registered, or quit. Returns the authenticated user.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.loggedIn {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the catalogue screens for the signed-in user and blocks until
// quit or logout. Returns logout=true when the user chose to sign out rather
// than exit.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
