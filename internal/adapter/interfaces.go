// Package adapter provides transport-layer abstractions for communicating
// with the book-stack server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/readreview/book-stack/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the book-stack
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the sanitized user record.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken and returns the sanitized user
	// record.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Profile fetches the account record of the token holder.
	// Requires a valid bearer token.
	Profile(ctx context.Context) (models.User, error)

	// ChangePassword replaces the token holder's password.
	// Requires a valid bearer token.
	ChangePassword(ctx context.Context, newPassword string) error

	// ListBooks fetches the public book catalogue. A non-empty search term
	// filters by title or author substring.
	ListBooks(ctx context.Context, search string) ([]models.Book, error)

	// GetBook fetches a single book by id, including its review count.
	GetBook(ctx context.Context, bookID int64) (models.Book, error)

	// CreateBook adds a new book owned by the token holder.
	// Requires a valid bearer token.
	CreateBook(ctx context.Context, input models.BookInput) (models.Book, error)

	// UpdateBook replaces the editable fields of a book owned by the token
	// holder. Returns [ErrForbidden] (wrapped) when the book belongs to
	// someone else. Requires a valid bearer token.
	UpdateBook(ctx context.Context, bookID int64, input models.BookInput) (models.Book, error)

	// DeleteBook removes a book owned by the token holder together with its
	// reviews. Returns [ErrForbidden] (wrapped) when the book belongs to
	// someone else. Requires a valid bearer token.
	DeleteBook(ctx context.Context, bookID int64) error

	// ListReviews fetches all reviews of a book, newest first.
	ListReviews(ctx context.Context, bookID int64) ([]models.Review, error)

	// CreateReview attaches a new review authored by the token holder to a
	// book. Requires a valid bearer token.
	CreateReview(ctx context.Context, bookID int64, input models.ReviewInput) (models.Review, error)

	// UpdateReview replaces the body of a review authored by the token
	// holder. Returns [ErrForbidden] (wrapped) when the review belongs to
	// someone else. Requires a valid bearer token.
	UpdateReview(ctx context.Context, reviewID int64, input models.ReviewInput) (models.Review, error)

	// DeleteReview removes a review authored by the token holder.
	// Returns [ErrForbidden] (wrapped) when the review belongs to someone
	// else. Requires a valid bearer token.
	DeleteReview(ctx context.Context, reviewID int64) error

	// ListUsers fetches the public member directory.
	ListUsers(ctx context.Context) ([]models.User, error)

	// Stats fetches the book and review counts of the token holder.
	// Requires a valid bearer token.
	Stats(ctx context.Context) (models.UserStats, error)

	// Health checks whether the server is reachable and serving.
	Health(ctx context.Context) (models.HealthResponse, error)
}
