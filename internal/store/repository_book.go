package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/models"
)

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
// It executes all book CRUD operations against the "books" table, joining
// "reviews" where the derived review count is needed.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook persists a new book and returns the record with server-assigned
// fields (ID, timestamps). A freshly created book has zero reviews, so
// ReviewCount is left at its zero value.
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBook, book.Title, book.Author, book.Description, book.OwnerUserID)

	var created models.Book
	if err := row.Scan(&created.ID, &created.Title, &created.Author, &created.Description, &created.OwnerUserID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Int64("owner_user_id", book.OwnerUserID).Msg("error: inserting book")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Book{}, ErrUserNotFound
		default:
			return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetBookByID retrieves a single book together with its review count.
//
// Returns [ErrBookNotFound] when the id does not resolve to a record.
func (r *bookRepository) GetBookByID(ctx context.Context, bookID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, getBookByID, bookID)

	if err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Description, &book.OwnerUserID, &book.CreatedAt, &book.UpdatedAt, &book.ReviewCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).Str("func", "*bookRepository.GetBookByID").Int64("book_id", bookID).Msg("error: scanning book row")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return book, nil
}

// ListBooks returns catalogued books ordered newest-first, each with its
// review count. A non-empty search narrows the result to books whose title
// or author matches case-insensitively.
func (r *bookRepository) ListBooks(ctx context.Context, search string) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBooksQuery(search)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Str("search", search).Msg("failed to execute query for listing books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, 50)
	for rows.Next() {
		var b models.Book
		if scanErr := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Description, &b.OwnerUserID, &b.CreatedAt, &b.UpdatedAt, &b.ReviewCount); scanErr != nil {
			log.Err(scanErr).Str("func", "*bookRepository.ListBooks").Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		books = append(books, b)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*bookRepository.ListBooks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return books, nil
}

// UpdateBook overwrites the caller-editable fields of a book. The owner
// column is never part of the SET clause.
//
// Returns [ErrBookNotFound] when the id does not resolve to a record.
func (r *bookRepository) UpdateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateBook, book.Title, book.Author, book.Description, book.ID)

	var updated models.Book
	if err := row.Scan(&updated.ID, &updated.Title, &updated.Author, &updated.Description, &updated.OwnerUserID, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).Str("func", "*bookRepository.UpdateBook").Int64("book_id", book.ID).Msg("error: updating book")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteBook removes a book record.
//
// Returns [ErrBookNotFound] when the DELETE affects zero rows.
func (r *bookRepository) DeleteBook(ctx context.Context, bookID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBook, bookID)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Int64("book_id", bookID).Msg("failed to delete book")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}
