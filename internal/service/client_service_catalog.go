package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/readreview/book-stack/internal/adapter"
	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/models"
)

type clientCatalogService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientCatalogService constructs the client-side catalogue service on top
// of serverAdapter. It is a thin delegation layer that normalises input and
// maps transport errors to business errors.
func NewClientCatalogService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientCatalogService {
	return &clientCatalogService{adapter: serverAdapter, logger: logger}
}

func (c *clientCatalogService) ListBooks(ctx context.Context, search string) ([]models.Book, error) {
	books, err := c.adapter.ListBooks(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list books: %w", mapAdapterError(err))
	}

	return books, nil
}

func (c *clientCatalogService) GetBook(ctx context.Context, bookID int64) (models.Book, error) {
	book, err := c.adapter.GetBook(ctx, bookID)
	if err != nil {
		return models.Book{}, fmt.Errorf("get book: %w", mapAdapterError(err))
	}

	return book, nil
}

func (c *clientCatalogService) CreateBook(ctx context.Context, input models.BookInput) (models.Book, error) {
	book, err := c.adapter.CreateBook(ctx, trimBookInput(input))
	if err != nil {
		return models.Book{}, fmt.Errorf("create book: %w", mapAdapterError(err))
	}

	return book, nil
}

func (c *clientCatalogService) UpdateBook(ctx context.Context, bookID int64, input models.BookInput) (models.Book, error) {
	book, err := c.adapter.UpdateBook(ctx, bookID, trimBookInput(input))
	if err != nil {
		return models.Book{}, fmt.Errorf("update book: %w", mapAdapterError(err))
	}

	return book, nil
}

func (c *clientCatalogService) DeleteBook(ctx context.Context, bookID int64) error {
	if err := c.adapter.DeleteBook(ctx, bookID); err != nil {
		return fmt.Errorf("delete book: %w", mapAdapterError(err))
	}

	return nil
}

func (c *clientCatalogService) ListReviews(ctx context.Context, bookID int64) ([]models.Review, error) {
	reviews, err := c.adapter.ListReviews(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", mapAdapterError(err))
	}

	return reviews, nil
}

func (c *clientCatalogService) CreateReview(ctx context.Context, bookID int64, input models.ReviewInput) (models.Review, error) {
	input.Body = strings.TrimSpace(input.Body)

	review, err := c.adapter.CreateReview(ctx, bookID, input)
	if err != nil {
		return models.Review{}, fmt.Errorf("create review: %w", mapAdapterError(err))
	}

	return review, nil
}

func (c *clientCatalogService) UpdateReview(ctx context.Context, reviewID int64, input models.ReviewInput) (models.Review, error) {
	input.Body = strings.TrimSpace(input.Body)

	review, err := c.adapter.UpdateReview(ctx, reviewID, input)
	if err != nil {
		return models.Review{}, fmt.Errorf("update review: %w", mapAdapterError(err))
	}

	return review, nil
}

func (c *clientCatalogService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := c.adapter.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", mapAdapterError(err))
	}

	return nil
}

func (c *clientCatalogService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := c.adapter.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", mapAdapterError(err))
	}

	return users, nil
}

func (c *clientCatalogService) Stats(ctx context.Context) (models.UserStats, error) {
	stats, err := c.adapter.Stats(ctx)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("fetch stats: %w", mapAdapterError(err))
	}

	return stats, nil
}

func (c *clientCatalogService) Health(ctx context.Context) (models.HealthResponse, error) {
	health, err := c.adapter.Health(ctx)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health check: %w", mapAdapterError(err))
	}

	return health, nil
}

func trimBookInput(input models.BookInput) models.BookInput {
	input.Title = strings.TrimSpace(input.Title)
	input.Author = strings.TrimSpace(input.Author)
	input.Description = strings.TrimSpace(input.Description)
	return input
}
