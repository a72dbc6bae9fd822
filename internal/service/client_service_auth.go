package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/readreview/book-stack/internal/adapter"
	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/utils"
	"github.com/readreview/book-stack/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter

	currentUser models.User
	loggedIn    bool

	logger *logger.Logger
}

// NewClientAuthService constructs the client-side auth service on top of
// serverAdapter. The session it manages lives for the lifetime of the
// process; the bearer token is held by the adapter.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("register on server: %w", mapAdapterError(err))
	}

	a.openSession(user)
	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	req.Email = strings.TrimSpace(req.Email)

	user, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("login on server: %w", mapAdapterError(err))
	}

	a.openSession(user)
	return user, nil
}

func (a *clientAuthService) Profile(ctx context.Context) (models.User, error) {
	user, err := a.adapter.Profile(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch profile: %w", mapAdapterError(err))
	}

	a.openSession(user)
	return user, nil
}

func (a *clientAuthService) ChangePassword(ctx context.Context, newPassword string) error {
	if err := a.adapter.ChangePassword(ctx, newPassword); err != nil {
		return fmt.Errorf("change password: %w", mapAdapterError(err))
	}

	return nil
}

// CurrentUser returns the account of the open session. When no profile has
// been cached yet but the adapter already carries a bearer token, the display
// identity is recovered from the token claims instead.
func (a *clientAuthService) CurrentUser() (models.User, bool) {
	if a.loggedIn {
		return a.currentUser, true
	}

	token := a.adapter.Token()
	if token == "" {
		return models.User{}, false
	}

	identity, err := utils.ParseIdentityFromJWT(token)
	if err != nil {
		a.logger.Error().Err(err).Msg("could not read identity from stored token")
		return models.User{}, false
	}

	return models.User{
		UserID:   identity.UserID,
		Username: identity.Username,
		Email:    identity.Email,
	}, true
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
	a.currentUser = models.User{}
	a.loggedIn = false
}

func (a *clientAuthService) openSession(user models.User) {
	a.currentUser = user.Public()
	a.loggedIn = true
}
