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

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

var validRegisterBody = models.RegisterRequest{
	Username: "thomas",
	Email:    "thomas@dev.com",
	Password: "password123",
}

func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{UserID: 1, Username: req.Username, Email: req.Email, PasswordHash: "$2a$10$hash"}, nil
			},
			createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
				return stubToken(signedToken), nil
			},
		},
	})

	rec := do(t, router, http.MethodPost, "/api/auth/register", jsonBody(t, validRegisterBody), false)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var body models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, signedToken, body.Token)
	assert.Equal(t, int64(1), body.User.UserID)
	assert.Equal(t, "thomas", body.User.Username)
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash", "password hash must never be serialized")
}

func TestRegister_InvalidJSON(t *testing.T) {
	router := newTestRouter(t, &service.Services{AuthService: &mockAuthService{}})

	rec := do(t, router, http.MethodPost, "/api/auth/register", "{not json", false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeErrorMessage(t, rec))
}

func TestRegister_ValidationError(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
				return models.User{}, service.ErrInvalidDataProvided
			},
		},
	})

	rec := do(t, router, http.MethodPost, "/api/auth/register", jsonBody(t, validRegisterBody), false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided", decodeErrorMessage(t, rec))
}

func TestRegister_DuplicateAccount(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			registerUserFn: func(_ context.Context, _ models.RegisterRequest) (models.User, error) {
				return models.User{}, store.ErrUserAlreadyExists
			},
		},
	})

	rec := do(t, router, http.MethodPost, "/api/auth/register", jsonBody(t, validRegisterBody), false)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Username or email already in use", decodeErrorMessage(t, rec))
}

func TestRegister_TokenCreationFails(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			registerUserFn: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
				return models.User{UserID: 1}, nil
			},
			createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
				return models.Token{}, service.ErrTokenCreationFailed
			},
		},
	})

	rec := do(t, router, http.MethodPost, "/api/auth/register", jsonBody(t, validRegisterBody), false)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeErrorMessage(t, rec))
}

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
				assert.Equal(t, "thomas@dev.com", req.Email)
				return models.User{UserID: 7, Username: "thomas", Email: req.Email}, nil
			},
			createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
				return stubToken(signedToken), nil
			},
		},
	})

	rec := do(t, router, http.MethodPost, "/api/auth/login",
		jsonBody(t, models.LoginRequest{Email: "thomas@dev.com", Password: "password123"}), false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var body models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.User.UserID)
}

func TestLogin_WrongCredentials(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
				return models.User{}, service.ErrWrongCredentials
			},
		},
	})

	rec := do(t, router, http.MethodPost, "/api/auth/login",
		jsonBody(t, models.LoginRequest{Email: "thomas@dev.com", Password: "wrong"}), false)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeErrorMessage(t, rec))
}

func TestProfile_Success(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: acceptTestToken(t),
			profileFn: func(_ context.Context, userID int64) (models.User, error) {
				assert.Equal(t, testIdentity.UserID, userID)
				return models.User{UserID: userID, Username: "thomas", PasswordHash: "$2a$10$hash"}, nil
			},
		},
	})

	rec := do(t, router, http.MethodGet, "/api/auth/profile", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "thomas", body.Username)
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
}

func TestProfile_AccountVanished(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: acceptTestToken(t),
			profileFn: func(_ context.Context, _ int64) (models.User, error) {
				return models.User{}, store.ErrUserNotFound
			},
		},
	})

	rec := do(t, router, http.MethodGet, "/api/auth/profile", "", true)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decodeErrorMessage(t, rec))
}

func TestChangePassword(t *testing.T) {
	var gotPassword string
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: acceptTestToken(t),
			changePasswordFn: func(_ context.Context, userID int64, newPassword string) error {
				assert.Equal(t, testIdentity.UserID, userID)
				gotPassword = newPassword
				return nil
			},
		},
	})

	rec := do(t, router, http.MethodPut, "/api/auth/password", `{"password":"brand-new-password"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "brand-new-password", gotPassword)
}
