package service

import (
	"context"
	"testing"

	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/store"
	"github.com/readreview/book-stack/internal/validators"
	"github.com/readreview/book-stack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner    = models.AuthUser{UserID: 7, Email: "owner@dev.com", Username: "owner"}
	stranger = models.AuthUser{UserID: 8, Email: "stranger@dev.com", Username: "stranger"}
)

func newTestBookService(repo *mockBookRepository) BookService {
	return NewBookService(repo, logger.Nop())
}

func TestCreateBook_Success(t *testing.T) {
	var persisted models.Book
	svc := newTestBookService(&mockBookRepository{
		createBookFn: func(ctx context.Context, book models.Book) (models.Book, error) {
			persisted = book
			book.ID = 1
			return book, nil
		},
	})

	created, err := svc.CreateBook(context.Background(), owner, models.BookInput{
		Title:       "  Dune ",
		Author:      "Frank Herbert",
		Description: " Desert planet. ",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Dune", persisted.Title, "fields are trimmed before persistence")
	assert.Equal(t, "Desert planet.", persisted.Description)
	assert.Equal(t, owner.UserID, persisted.OwnerUserID, "owner comes from the identity, not the payload")
}

func TestCreateBook_Validation(t *testing.T) {
	svc := newTestBookService(&mockBookRepository{
		createBookFn: func(ctx context.Context, book models.Book) (models.Book, error) {
			t.Fatal("repository must not be called on invalid input")
			return models.Book{}, nil
		},
	})

	_, err := svc.CreateBook(context.Background(), owner, models.BookInput{Title: "   ", Author: "Frank Herbert", Description: "Desert planet."})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateBook(context.Background(), owner, models.BookInput{Title: "Dune", Description: "Desert planet."})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateBook(context.Background(), owner, models.BookInput{Title: "Dune", Author: "Frank Herbert", Description: "   "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyDescription)
}

func TestGetBook(t *testing.T) {
	svc := newTestBookService(&mockBookRepository{
		getBookByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			if bookID == 42 {
				return models.Book{ID: 42, Title: "Dune", ReviewCount: 3}, nil
			}
			return models.Book{}, store.ErrBookNotFound
		},
	})

	book, err := svc.GetBook(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(3), book.ReviewCount)

	_, err = svc.GetBook(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}

func TestListBooks_PassesTrimmedSearch(t *testing.T) {
	var gotSearch string
	svc := newTestBookService(&mockBookRepository{
		listBooksFn: func(ctx context.Context, search string) ([]models.Book, error) {
			gotSearch = search
			return []models.Book{{ID: 1, Title: "Dune"}}, nil
		},
	})

	books, err := svc.ListBooks(context.Background(), "  dune  ")
	require.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, "dune", gotSearch)
}

func TestUpdateBook_Success(t *testing.T) {
	svc := newTestBookService(&mockBookRepository{
		getBookByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{ID: 42, Title: "Dune", OwnerUserID: owner.UserID, ReviewCount: 3}, nil
		},
		updateBookFn: func(ctx context.Context, book models.Book) (models.Book, error) {
			book.OwnerUserID = owner.UserID
			return book, nil
		},
	})

	updated, err := svc.UpdateBook(context.Background(), owner, 42, models.BookInput{Title: "Dune Messiah", Author: "Frank Herbert", Description: "The sequel."})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Equal(t, int64(3), updated.ReviewCount, "review count survives the update")
}

func TestUpdateBook_GatingOrder(t *testing.T) {
	// a missing book is reported before ownership is considered,
	// even when the acting user would not own it anyway
	missing := newTestBookService(&mockBookRepository{
		getBookByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{}, store.ErrBookNotFound
		},
	})
	_, err := missing.UpdateBook(context.Background(), stranger, 404, models.BookInput{})
	assert.ErrorIs(t, err, store.ErrBookNotFound)
	assert.NotErrorIs(t, err, ErrForbidden)

	// an existing book owned by someone else is forbidden before
	// input validation runs
	foreign := newTestBookService(&mockBookRepository{
		getBookByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{ID: 42, OwnerUserID: owner.UserID}, nil
		},
	})
	_, err = foreign.UpdateBook(context.Background(), stranger, 42, models.BookInput{})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateBook_Validation(t *testing.T) {
	svc := newTestBookService(&mockBookRepository{
		getBookByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{ID: 42, OwnerUserID: owner.UserID}, nil
		},
		updateBookFn: func(ctx context.Context, book models.Book) (models.Book, error) {
			t.Fatal("repository must not be called on invalid input")
			return models.Book{}, nil
		},
	})

	_, err := svc.UpdateBook(context.Background(), owner, 42, models.BookInput{Title: "", Author: "Frank Herbert"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDeleteBook_Success(t *testing.T) {
	var deletedID int64
	svc := newTestBookService(&mockBookRepository{
		getBookByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{ID: bookID, OwnerUserID: owner.UserID}, nil
		},
		deleteBookFn: func(ctx context.Context, bookID int64) error {
			deletedID = bookID
			return nil
		},
	})

	require.NoError(t, svc.DeleteBook(context.Background(), owner, 42))
	assert.Equal(t, int64(42), deletedID)
}

func TestDeleteBook_Forbidden(t *testing.T) {
	svc := newTestBookService(&mockBookRepository{
		getBookByIDFn: func(ctx context.Context, bookID int64) (models.Book, error) {
			return models.Book{ID: bookID, OwnerUserID: owner.UserID}, nil
		},
		deleteBookFn: func(ctx context.Context, bookID int64) error {
			t.Fatal("repository must not be called for a non-owner")
			return nil
		},
	})

	err := svc.DeleteBook(context.Background(), stranger, 42)
	assert.ErrorIs(t, err, ErrForbidden)
}
