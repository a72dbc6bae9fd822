package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/store"
	"github.com/readreview/book-stack/internal/validators"
	"github.com/readreview/book-stack/models"
)

// bookService is the concrete implementation of BookService.
//
// Ownership gating happens here, not in the handlers: every mutation first
// loads the record, then compares its owner against the acting identity.
// A missing record surfaces as not-found before any forbidden check runs,
// so callers cannot distinguish "exists but not yours" probing from a miss
// by the order of errors.
type bookService struct {
	bookRepository store.BookRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewBookService constructs a BookService wired to the given BookRepository.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validators.NewContentValidator(),
		logger:         logger,
	}
}

// CreateBook validates the input and persists a new book owned by actor.
// The owner always comes from the authenticated identity, never from the
// request payload.
func (b *bookService) CreateBook(ctx context.Context, actor models.AuthUser, input models.BookInput) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := b.validator.Validate(ctx, input); err != nil {
		log.Error().Int64("user_id", actor.UserID).Msg("invalid book data provided")
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := b.bookRepository.CreateBook(ctx, models.Book{
		Title:       strings.TrimSpace(input.Title),
		Author:      strings.TrimSpace(input.Author),
		Description: strings.TrimSpace(input.Description),
		OwnerUserID: actor.UserID,
	})
	if err != nil {
		log.Err(err).Int64("user_id", actor.UserID).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return created, nil
}

// GetBook returns a single book with its review count.
func (b *bookService) GetBook(ctx context.Context, bookID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	book, err := b.bookRepository.GetBookByID(ctx, bookID)
	if err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("book search by id failed")
		return models.Book{}, fmt.Errorf("book search by id failed: %w", err)
	}

	return book, nil
}

// ListBooks returns the catalogue newest-first. A non-empty search narrows
// the result to books whose title or author matches case-insensitively.
func (b *bookService) ListBooks(ctx context.Context, search string) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	books, err := b.bookRepository.ListBooks(ctx, strings.TrimSpace(search))
	if err != nil {
		log.Err(err).Msg("book listing failed")
		return nil, fmt.Errorf("book listing failed: %w", err)
	}

	return books, nil
}

// UpdateBook overwrites the caller-editable fields of a book owned by actor.
//
// Gating order: the record is loaded first (missing → store.ErrBookNotFound),
// then ownership is checked (non-owner → ErrForbidden), then the input is
// validated. Ownership itself is immutable.
func (b *bookService) UpdateBook(ctx context.Context, actor models.AuthUser, bookID int64, input models.BookInput) (models.Book, error) {
	log := logger.FromContext(ctx)

	book, err := b.bookRepository.GetBookByID(ctx, bookID)
	if err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("book search by id failed")
		return models.Book{}, fmt.Errorf("book search by id failed: %w", err)
	}

	if book.OwnerUserID != actor.UserID {
		log.Error().Int64("book_id", bookID).Int64("owner_user_id", book.OwnerUserID).Int64("user_id", actor.UserID).Msg("book update denied")
		return models.Book{}, ErrForbidden
	}

	if err := b.validator.Validate(ctx, input); err != nil {
		log.Error().Int64("book_id", bookID).Msg("invalid book data provided")
		return models.Book{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := b.bookRepository.UpdateBook(ctx, models.Book{
		ID:          bookID,
		Title:       strings.TrimSpace(input.Title),
		Author:      strings.TrimSpace(input.Author),
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("book update ended with error")
		return models.Book{}, fmt.Errorf("book update ended with error: %w", err)
	}

	// the review count is not part of the UPDATE ... RETURNING row
	updated.ReviewCount = book.ReviewCount

	return updated, nil
}

// DeleteBook removes a book owned by actor. Reviews of the book go with it
// via the ON DELETE CASCADE on the reviews table.
//
// Gating order matches UpdateBook: not-found before forbidden.
func (b *bookService) DeleteBook(ctx context.Context, actor models.AuthUser, bookID int64) error {
	log := logger.FromContext(ctx)

	book, err := b.bookRepository.GetBookByID(ctx, bookID)
	if err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("book search by id failed")
		return fmt.Errorf("book search by id failed: %w", err)
	}

	if book.OwnerUserID != actor.UserID {
		log.Error().Int64("book_id", bookID).Int64("owner_user_id", book.OwnerUserID).Int64("user_id", actor.UserID).Msg("book deletion denied")
		return ErrForbidden
	}

	if err := b.bookRepository.DeleteBook(ctx, bookID); err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("book deletion ended with error")
		return fmt.Errorf("book deletion ended with error: %w", err)
	}

	return nil
}
