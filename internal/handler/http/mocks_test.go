package http

import (
	"context"

	"github.com/readreview/book-stack/models"
)

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn   func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, error)
	profileFn        func(ctx context.Context, userID int64) (models.User, error)
	changePasswordFn func(ctx context.Context, userID int64, newPassword string) error
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Profile(ctx context.Context, userID int64) (models.User, error) {
	return m.profileFn(ctx, userID)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	return m.changePasswordFn(ctx, userID, newPassword)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock service.BookService
// ─────────────────────────────────────────────

type mockBookService struct {
	createBookFn func(ctx context.Context, actor models.AuthUser, input models.BookInput) (models.Book, error)
	getBookFn    func(ctx context.Context, bookID int64) (models.Book, error)
	listBooksFn  func(ctx context.Context, search string) ([]models.Book, error)
	updateBookFn func(ctx context.Context, actor models.AuthUser, bookID int64, input models.BookInput) (models.Book, error)
	deleteBookFn func(ctx context.Context, actor models.AuthUser, bookID int64) error
}

func (m *mockBookService) CreateBook(ctx context.Context, actor models.AuthUser, input models.BookInput) (models.Book, error) {
	return m.createBookFn(ctx, actor, input)
}

func (m *mockBookService) GetBook(ctx context.Context, bookID int64) (models.Book, error) {
	return m.getBookFn(ctx, bookID)
}

func (m *mockBookService) ListBooks(ctx context.Context, search string) ([]models.Book, error) {
	return m.listBooksFn(ctx, search)
}

func (m *mockBookService) UpdateBook(ctx context.Context, actor models.AuthUser, bookID int64, input models.BookInput) (models.Book, error) {
	return m.updateBookFn(ctx, actor, bookID, input)
}

func (m *mockBookService) DeleteBook(ctx context.Context, actor models.AuthUser, bookID int64) error {
	return m.deleteBookFn(ctx, actor, bookID)
}

// ─────────────────────────────────────────────
// Mock service.ReviewService
// ─────────────────────────────────────────────

type mockReviewService struct {
	createReviewFn    func(ctx context.Context, actor models.AuthUser, bookID int64, input models.ReviewInput) (models.Review, error)
	listBookReviewsFn func(ctx context.Context, bookID int64) ([]models.Review, error)
	updateReviewFn    func(ctx context.Context, actor models.AuthUser, reviewID int64, input models.ReviewInput) (models.Review, error)
	deleteReviewFn    func(ctx context.Context, actor models.AuthUser, reviewID int64) error
}

func (m *mockReviewService) CreateReview(ctx context.Context, actor models.AuthUser, bookID int64, input models.ReviewInput) (models.Review, error) {
	return m.createReviewFn(ctx, actor, bookID, input)
}

func (m *mockReviewService) ListBookReviews(ctx context.Context, bookID int64) ([]models.Review, error) {
	return m.listBookReviewsFn(ctx, bookID)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, actor models.AuthUser, reviewID int64, input models.ReviewInput) (models.Review, error) {
	return m.updateReviewFn(ctx, actor, reviewID, input)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, actor models.AuthUser, reviewID int64) error {
	return m.deleteReviewFn(ctx, actor, reviewID)
}

// ─────────────────────────────────────────────
// Mock service.UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	listUsersFn func(ctx context.Context) ([]models.User, error)
	getUserFn   func(ctx context.Context, userID int64) (models.User, error)
	statsFn     func(ctx context.Context, userID int64) (models.UserStats, error)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) Stats(ctx context.Context, userID int64) (models.UserStats, error) {
	return m.statsFn(ctx, userID)
}
