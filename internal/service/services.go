package service

import (
	"github.com/readreview/book-stack/internal/config"
	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/store"
)

type Services struct {
	AuthService   AuthService
	BookService   BookService
	ReviewService ReviewService
	UserService   UserService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		BookService:   NewBookService(storages.BookRepository, logger),
		ReviewService: NewReviewService(storages.ReviewRepository, storages.BookRepository, logger),
		UserService:   NewUserService(storages.UserRepository, logger),
	}
}
