package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/readreview/book-stack/internal/adapter"
	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/mock"
	"github.com/readreview/book-stack/internal/store"
	"github.com/readreview/book-stack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientCatalog(t *testing.T, ctrl *gomock.Controller) (*clientCatalogService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientCatalogService(mockAdapter, logger.Nop()).(*clientCatalogService)
	return svc, mockAdapter
}

// ── Books ───────────────────────────────────────────────────────────────────

func TestClientCatalogService_ListBooks_TrimsSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	want := []models.Book{{ID: 1, Title: "Dune"}}
	mockAdapter.EXPECT().ListBooks(ctx, "dune").Return(want, nil)

	got, err := svc.ListBooks(ctx, "  dune  ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientCatalogService_GetBook_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetBook(ctx, int64(99)).
		Return(models.Book{}, fmt.Errorf("%w: Book not found", adapter.ErrNotFound))

	_, err := svc.GetBook(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}

func TestClientCatalogService_CreateBook_TrimsInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	created := models.Book{ID: 42, Title: "Dune", Author: "Frank Herbert", OwnerUserID: 7}

	mockAdapter.EXPECT().
		CreateBook(ctx, models.BookInput{Title: "Dune", Author: "Frank Herbert", Description: "Desert planet"}).
		Return(created, nil)

	got, err := svc.CreateBook(ctx, models.BookInput{
		Title:       "  Dune  ",
		Author:      " Frank Herbert ",
		Description: " Desert planet ",
	})

	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestClientCatalogService_UpdateBook_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().UpdateBook(ctx, int64(42), gomock.Any()).
		Return(models.Book{}, fmt.Errorf("%w: Forbidden", adapter.ErrForbidden))

	_, err := svc.UpdateBook(ctx, 42, models.BookInput{Title: "Dune", Author: "Frank Herbert"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestClientCatalogService_DeleteBook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteBook(ctx, int64(42)).Return(nil)

	require.NoError(t, svc.DeleteBook(ctx, 42))
}

// ── Reviews ─────────────────────────────────────────────────────────────────

func TestClientCatalogService_CreateReview_TrimsBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	created := models.Review{ID: 3, Body: "Outstanding", BookID: 42, AuthorUserID: 7}

	mockAdapter.EXPECT().
		CreateReview(ctx, int64(42), models.ReviewInput{Body: "Outstanding"}).
		Return(created, nil)

	got, err := svc.CreateReview(ctx, 42, models.ReviewInput{Body: "  Outstanding  "})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestClientCatalogService_ListReviews_MissingBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListReviews(ctx, int64(99)).
		Return(nil, fmt.Errorf("%w: Book not found", adapter.ErrNotFound))

	_, err := svc.ListReviews(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}

func TestClientCatalogService_UpdateReview_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().UpdateReview(ctx, int64(3), gomock.Any()).
		Return(models.Review{}, fmt.Errorf("%w: Review not found", adapter.ErrNotFound))

	_, err := svc.UpdateReview(ctx, 3, models.ReviewInput{Body: "Revised"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
}

func TestClientCatalogService_DeleteReview_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteReview(ctx, int64(3)).
		Return(fmt.Errorf("%w: Forbidden", adapter.ErrForbidden))

	err := svc.DeleteReview(ctx, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Users / Stats / Health ──────────────────────────────────────────────────

func TestClientCatalogService_ListUsers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	want := []models.User{{UserID: 1, Username: "thomas"}}
	mockAdapter.EXPECT().ListUsers(ctx).Return(want, nil)

	got, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientCatalogService_Stats_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Stats(ctx).
		Return(models.UserStats{}, fmt.Errorf("%w: Invalid or expired token", adapter.ErrUnauthorized))

	_, err := svc.Stats(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestClientCatalogService_Health_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClientCatalog(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Health(ctx).
		Return(models.HealthResponse{Status: "ok"}, nil)

	got, err := svc.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Status)
}
