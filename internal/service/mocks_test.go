package service

import (
	"context"

	"github.com/readreview/book-stack/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn       func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn  func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn     func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn        func(ctx context.Context) ([]models.User, error)
	updatePasswordFn   func(ctx context.Context, userID int64, passwordHash string) error
	countUserContentFn func(ctx context.Context, userID int64) (models.UserStats, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, userID, passwordHash)
	}
	return nil
}

func (m *mockUserRepository) CountUserContent(ctx context.Context, userID int64) (models.UserStats, error) {
	if m.countUserContentFn != nil {
		return m.countUserContentFn(ctx, userID)
	}
	return models.UserStats{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.BookRepository
// ─────────────────────────────────────────────

type mockBookRepository struct {
	createBookFn  func(ctx context.Context, book models.Book) (models.Book, error)
	getBookByIDFn func(ctx context.Context, bookID int64) (models.Book, error)
	listBooksFn   func(ctx context.Context, search string) ([]models.Book, error)
	updateBookFn  func(ctx context.Context, book models.Book) (models.Book, error)
	deleteBookFn  func(ctx context.Context, bookID int64) error
}

func (m *mockBookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	if m.createBookFn != nil {
		return m.createBookFn(ctx, book)
	}
	return book, nil
}

func (m *mockBookRepository) GetBookByID(ctx context.Context, bookID int64) (models.Book, error) {
	if m.getBookByIDFn != nil {
		return m.getBookByIDFn(ctx, bookID)
	}
	return models.Book{}, nil
}

func (m *mockBookRepository) ListBooks(ctx context.Context, search string) ([]models.Book, error) {
	if m.listBooksFn != nil {
		return m.listBooksFn(ctx, search)
	}
	return nil, nil
}

func (m *mockBookRepository) UpdateBook(ctx context.Context, book models.Book) (models.Book, error) {
	if m.updateBookFn != nil {
		return m.updateBookFn(ctx, book)
	}
	return book, nil
}

func (m *mockBookRepository) DeleteBook(ctx context.Context, bookID int64) error {
	if m.deleteBookFn != nil {
		return m.deleteBookFn(ctx, bookID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ReviewRepository
// ─────────────────────────────────────────────

type mockReviewRepository struct {
	createReviewFn      func(ctx context.Context, review models.Review) (models.Review, error)
	getReviewByIDFn     func(ctx context.Context, reviewID int64) (models.Review, error)
	listReviewsByBookFn func(ctx context.Context, bookID int64) ([]models.Review, error)
	updateReviewFn      func(ctx context.Context, review models.Review) (models.Review, error)
	deleteReviewFn      func(ctx context.Context, reviewID int64) error
}

func (m *mockReviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if m.createReviewFn != nil {
		return m.createReviewFn(ctx, review)
	}
	return review, nil
}

func (m *mockReviewRepository) GetReviewByID(ctx context.Context, reviewID int64) (models.Review, error) {
	if m.getReviewByIDFn != nil {
		return m.getReviewByIDFn(ctx, reviewID)
	}
	return models.Review{}, nil
}

func (m *mockReviewRepository) ListReviewsByBook(ctx context.Context, bookID int64) ([]models.Review, error) {
	if m.listReviewsByBookFn != nil {
		return m.listReviewsByBookFn(ctx, bookID)
	}
	return nil, nil
}

func (m *mockReviewRepository) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if m.updateReviewFn != nil {
		return m.updateReviewFn(ctx, review)
	}
	return review, nil
}

func (m *mockReviewRepository) DeleteReview(ctx context.Context, reviewID int64) error {
	if m.deleteReviewFn != nil {
		return m.deleteReviewFn(ctx, reviewID)
	}
	return nil
}
