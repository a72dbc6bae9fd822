package service

import (
	"context"

	"github.com/readreview/book-stack/models"
)

// ClientAuthService defines the client-side contract for account management
// and session state. Implementations talk to the server through
// [adapter.ServerAdapter] and keep the authenticated user in memory for the
// duration of the session.
type ClientAuthService interface {
	// Register creates a new account on the server and opens a session for
	// it. Returns the sanitized user record.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates against the server and opens a session.
	// Returns the sanitized user record.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Profile fetches the current account record from the server and
	// refreshes the in-memory session copy.
	Profile(ctx context.Context) (models.User, error)

	// ChangePassword replaces the password of the logged-in account.
	ChangePassword(ctx context.Context, newPassword string) error

	// CurrentUser returns the user of the active session, falling back to the
	// identity claims of a stored token, or false when no session is open.
	CurrentUser() (models.User, bool)

	// Logout discards the session token and the in-memory user.
	Logout()
}

// ClientCatalogService defines the client-side contract for browsing and
// editing the shared book catalogue.
type ClientCatalogService interface {
	// ListBooks fetches the catalogue, optionally filtered by a title or
	// author substring.
	ListBooks(ctx context.Context, search string) ([]models.Book, error)

	// GetBook fetches one book together with its review count.
	GetBook(ctx context.Context, bookID int64) (models.Book, error)

	// CreateBook adds a book owned by the logged-in user.
	CreateBook(ctx context.Context, input models.BookInput) (models.Book, error)

	// UpdateBook replaces the editable fields of an owned book.
	UpdateBook(ctx context.Context, bookID int64, input models.BookInput) (models.Book, error)

	// DeleteBook removes an owned book together with its reviews.
	DeleteBook(ctx context.Context, bookID int64) error

	// ListReviews fetches the reviews of a book, newest first.
	ListReviews(ctx context.Context, bookID int64) ([]models.Review, error)

	// CreateReview attaches a review authored by the logged-in user to a
	// book.
	CreateReview(ctx context.Context, bookID int64, input models.ReviewInput) (models.Review, error)

	// UpdateReview replaces the body of an authored review.
	UpdateReview(ctx context.Context, reviewID int64, input models.ReviewInput) (models.Review, error)

	// DeleteReview removes an authored review.
	DeleteReview(ctx context.Context, reviewID int64) error

	// ListUsers fetches the public member directory.
	ListUsers(ctx context.Context) ([]models.User, error)

	// Stats fetches the logged-in user's book and review counts.
	Stats(ctx context.Context) (models.UserStats, error)

	// Health checks whether the server is reachable.
	Health(ctx context.Context) (models.HealthResponse, error)
}
