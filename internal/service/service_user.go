package service

import (
	"context"
	"fmt"

	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/store"
	"github.com/readreview/book-stack/models"
)

// userService is the concrete implementation of UserService. It serves the
// public account directory and the per-user content statistics.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns all registered accounts newest-first. Password hashes
// are never selected by the underlying query.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// GetUser returns a single account by id. The record still carries the
// password hash; callers sanitize via models.User.Public before
// serialization.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// Stats reports how many books and reviews the given user owns.
func (u *userService) Stats(ctx context.Context, userID int64) (models.UserStats, error) {
	log := logger.FromContext(ctx)

	stats, err := u.userRepository.CountUserContent(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user stats counting failed")
		return models.UserStats{}, fmt.Errorf("user stats counting failed: %w", err)
	}

	return stats, nil
}
