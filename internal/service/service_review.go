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

// reviewService is the concrete implementation of ReviewService.
//
// Authorship gating mirrors the book service: the record is loaded first,
// then the author is compared against the acting identity, so a missing
// review always surfaces as not-found before any forbidden check.
type reviewService struct {
	reviewRepository store.ReviewRepository
	bookRepository   store.BookRepository
	validator        validators.Validator
	logger           *logger.Logger
}

// NewReviewService constructs a ReviewService wired to the given repositories.
// The BookRepository is needed to confirm the target book exists before a
// review is created.
func NewReviewService(reviewRepository store.ReviewRepository, bookRepository store.BookRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		bookRepository:   bookRepository,
		validator:        validators.NewContentValidator(),
		logger:           logger,
	}
}

// CreateReview validates the input, confirms the target book exists, and
// persists a new review authored by actor. The author always comes from
// the authenticated identity, never from the request payload.
func (r *reviewService) CreateReview(ctx context.Context, actor models.AuthUser, bookID int64, input models.ReviewInput) (models.Review, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, input); err != nil {
		log.Error().Int64("book_id", bookID).Int64("user_id", actor.UserID).Msg("invalid review data provided")
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := r.bookRepository.GetBookByID(ctx, bookID); err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("book search by id failed")
		return models.Review{}, fmt.Errorf("book search by id failed: %w", err)
	}

	created, err := r.reviewRepository.CreateReview(ctx, models.Review{
		Body:         strings.TrimSpace(input.Body),
		BookID:       bookID,
		AuthorUserID: actor.UserID,
	})
	if err != nil {
		log.Err(err).Int64("book_id", bookID).Int64("user_id", actor.UserID).Msg("review creation ended with error")
		return models.Review{}, fmt.Errorf("review creation ended with error: %w", err)
	}

	return created, nil
}

// ListBookReviews returns all reviews of a book, newest first. The book is
// loaded first so reviews of a missing book surface as not-found rather
// than an empty list.
func (r *reviewService) ListBookReviews(ctx context.Context, bookID int64) ([]models.Review, error) {
	log := logger.FromContext(ctx)

	if _, err := r.bookRepository.GetBookByID(ctx, bookID); err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("book search by id failed")
		return nil, fmt.Errorf("book search by id failed: %w", err)
	}

	reviews, err := r.reviewRepository.ListReviewsByBook(ctx, bookID)
	if err != nil {
		log.Err(err).Int64("book_id", bookID).Msg("review listing failed")
		return nil, fmt.Errorf("review listing failed: %w", err)
	}

	return reviews, nil
}

// UpdateReview overwrites the body of a review authored by actor.
//
// Gating order: load (missing → store.ErrReviewNotFound), authorship
// (non-author → ErrForbidden), then validation. Book and author references
// are immutable.
func (r *reviewService) UpdateReview(ctx context.Context, actor models.AuthUser, reviewID int64, input models.ReviewInput) (models.Review, error) {
	log := logger.FromContext(ctx)

	review, err := r.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		log.Err(err).Int64("review_id", reviewID).Msg("review search by id failed")
		return models.Review{}, fmt.Errorf("review search by id failed: %w", err)
	}

	if review.AuthorUserID != actor.UserID {
		log.Error().Int64("review_id", reviewID).Int64("author_user_id", review.AuthorUserID).Int64("user_id", actor.UserID).Msg("review update denied")
		return models.Review{}, ErrForbidden
	}

	if err := r.validator.Validate(ctx, input); err != nil {
		log.Error().Int64("review_id", reviewID).Msg("invalid review data provided")
		return models.Review{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := r.reviewRepository.UpdateReview(ctx, models.Review{
		ID:   reviewID,
		Body: strings.TrimSpace(input.Body),
	})
	if err != nil {
		log.Err(err).Int64("review_id", reviewID).Msg("review update ended with error")
		return models.Review{}, fmt.Errorf("review update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteReview removes a review authored by actor.
//
// Gating order matches UpdateReview: not-found before forbidden.
func (r *reviewService) DeleteReview(ctx context.Context, actor models.AuthUser, reviewID int64) error {
	log := logger.FromContext(ctx)

	review, err := r.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		log.Err(err).Int64("review_id", reviewID).Msg("review search by id failed")
		return fmt.Errorf("review search by id failed: %w", err)
	}

	if review.AuthorUserID != actor.UserID {
		log.Error().Int64("review_id", reviewID).Int64("author_user_id", review.AuthorUserID).Int64("user_id", actor.UserID).Msg("review deletion denied")
		return ErrForbidden
	}

	if err := r.reviewRepository.DeleteReview(ctx, reviewID); err != nil {
		log.Err(err).Int64("review_id", reviewID).Msg("review deletion ended with error")
		return fmt.Errorf("review deletion ended with error: %w", err)
	}

	return nil
}
