package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/readreview/book-stack/internal/service"
	"github.com/readreview/book-stack/internal/store"
	"github.com/readreview/book-stack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers_Public(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		UserService: &mockUserService{
			listUsersFn: func(_ context.Context) ([]models.User, error) {
				return []models.User{
					{UserID: 2, Username: "beta", Email: "beta@dev.com"},
					{UserID: 1, Username: "alpha", Email: "alpha@dev.com", PasswordHash: "$2a$10$hash"},
				}, nil
			},
		},
	})

	rec := do(t, router, http.MethodGet, "/api/users", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 2)
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
}

func TestGetUser_Public(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		UserService: &mockUserService{
			getUserFn: func(_ context.Context, userID int64) (models.User, error) {
				if userID == 7 {
					return models.User{UserID: 7, Username: "thomas"}, nil
				}
				return models.User{}, store.ErrUserNotFound
			},
		},
	})

	rec := do(t, router, http.MethodGet, "/api/users/7", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/users/404", "", false)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeErrorMessage(t, rec))
}

func TestStats_UsesCallerIdentity(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: acceptTestToken(t)},
		UserService: &mockUserService{
			statsFn: func(_ context.Context, userID int64) (models.UserStats, error) {
				assert.Equal(t, testIdentity.UserID, userID)
				return models.UserStats{UserID: userID, BookCount: 3, ReviewCount: 5}, nil
			},
		},
	})

	rec := do(t, router, http.MethodGet, "/api/users/stats", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats models.UserStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(3), stats.BookCount)
	assert.Equal(t, int64(5), stats.ReviewCount)
}
