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

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository]. It executes all review CRUD operations against the
// "reviews" table.
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReviewRepository constructs a [ReviewRepository] backed by the provided
// database connection and logger.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReview persists a new review and returns the record with
// server-assigned fields (ID, timestamps).
//
// The service layer checks book existence before calling this method; the
// foreign key on book_id still backstops races where the book is deleted
// between the check and the insert, mapped to [ErrBookNotFound].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReview, review.Body, review.BookID, review.AuthorUserID)

	var created models.Review
	if err := row.Scan(&created.ID, &created.Body, &created.BookID, &created.AuthorUserID, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Int64("book_id", review.BookID).Msg("error: inserting review")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Review{}, ErrBookNotFound
		default:
			return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetReviewByID retrieves a single review by its primary key.
//
// Returns [ErrReviewNotFound] when the id does not resolve to a record.
func (r *reviewRepository) GetReviewByID(ctx context.Context, reviewID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	var review models.Review
	row := r.db.QueryRowContext(ctx, getReviewByID, reviewID)

	if err := row.Scan(&review.ID, &review.Body, &review.BookID, &review.AuthorUserID, &review.CreatedAt, &review.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.GetReviewByID").Int64("review_id", reviewID).Msg("error: scanning review row")
		return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return review, nil
}

// ListReviewsByBook returns all reviews of the given book, newest first.
func (r *reviewRepository) ListReviewsByBook(ctx context.Context, bookID int64) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listReviewsByBook, bookID)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviewsByBook").Int64("book_id", bookID).Msg("failed to execute query for listing reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, 20)
	for rows.Next() {
		var rv models.Review
		if scanErr := rows.Scan(&rv.ID, &rv.Body, &rv.BookID, &rv.AuthorUserID, &rv.CreatedAt, &rv.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*reviewRepository.ListReviewsByBook").Msg("failed to scan review row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		reviews = append(reviews, rv)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*reviewRepository.ListReviewsByBook").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reviews, nil
}

// UpdateReview overwrites the body of a review. Book and author references
// are never part of the SET clause.
//
// Returns [ErrReviewNotFound] when the id does not resolve to a record.
func (r *reviewRepository) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateReview, review.Body, review.ID)

	var updated models.Review
	if err := row.Scan(&updated.ID, &updated.Body, &updated.BookID, &updated.AuthorUserID, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Int64("review_id", review.ID).Msg("error: updating review")
		return models.Review{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteReview removes a review record.
//
// Returns [ErrReviewNotFound] when the DELETE affects zero rows.
func (r *reviewRepository) DeleteReview(ctx context.Context, reviewID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteReview, reviewID)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Int64("review_id", reviewID).Msg("failed to delete review")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
