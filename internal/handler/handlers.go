package handler

import (
	"github.com/readreview/book-stack/internal/config"
	"github.com/readreview/book-stack/internal/handler/http"
	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
