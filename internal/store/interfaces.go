package store

import (
	"context"

	"github.com/readreview/book-stack/models"
)

// UserRepository persists user identity records and credential hashes.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	CountUserContent(ctx context.Context, userID int64) (models.UserStats, error)
}

// BookRepository persists catalogued books. List and Get populate the
// derived ReviewCount field.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	GetBookByID(ctx context.Context, bookID int64) (models.Book, error)
	ListBooks(ctx context.Context, search string) ([]models.Book, error)
	UpdateBook(ctx context.Context, book models.Book) (models.Book, error)
	DeleteBook(ctx context.Context, bookID int64) error
}

// ReviewRepository persists book reviews.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	GetReviewByID(ctx context.Context, reviewID int64) (models.Review, error)
	ListReviewsByBook(ctx context.Context, bookID int64) ([]models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) (models.Review, error)
	DeleteReview(ctx context.Context, reviewID int64) error
}
