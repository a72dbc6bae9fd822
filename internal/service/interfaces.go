package service

import (
	"context"

	"github.com/readreview/book-stack/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	Profile(ctx context.Context, userID int64) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, newPassword string) error
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type BookService interface {
	CreateBook(ctx context.Context, actor models.AuthUser, input models.BookInput) (models.Book, error)
	GetBook(ctx context.Context, bookID int64) (models.Book, error)
	ListBooks(ctx context.Context, search string) ([]models.Book, error)
	UpdateBook(ctx context.Context, actor models.AuthUser, bookID int64, input models.BookInput) (models.Book, error)
	DeleteBook(ctx context.Context, actor models.AuthUser, bookID int64) error
}

type ReviewService interface {
	CreateReview(ctx context.Context, actor models.AuthUser, bookID int64, input models.ReviewInput) (models.Review, error)
	ListBookReviews(ctx context.Context, bookID int64) ([]models.Review, error)
	UpdateReview(ctx context.Context, actor models.AuthUser, reviewID int64, input models.ReviewInput) (models.Review, error)
	DeleteReview(ctx context.Context, actor models.AuthUser, reviewID int64) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	Stats(ctx context.Context, userID int64) (models.UserStats, error)
}
