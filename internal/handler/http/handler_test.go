package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/service"
	"github.com/readreview/book-stack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers shared across handler tests
// ─────────────────────────────────────────────

const testBearerToken = "valid.jwt.token"

// testIdentity is the identity carried by testBearerToken in these tests.
var testIdentity = models.AuthUser{UserID: 7, Email: "thomas@dev.com", Username: "thomas"}

// acceptTestToken returns a parseTokenFn that accepts exactly
// testBearerToken and resolves it to testIdentity.
func acceptTestToken(t *testing.T) func(ctx context.Context, tokenString string) (models.Token, error) {
	t.Helper()
	return func(_ context.Context, tokenString string) (models.Token, error) {
		if tokenString != testBearerToken {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{
			UserID: testIdentity.UserID,
			Claims: models.TokenClaims{Email: testIdentity.Email, Username: testIdentity.Username},
		}, nil
	}
}

// newTestRouter wires the given service mocks into a fully routed handler.
// Nil mocks stay nil; tests only hit the routes they stub.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop()).Init()
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeErrorMessage extracts the "message" field of an error body.
func decodeErrorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

// do runs a request through the router, optionally with the test bearer token.
func do(t *testing.T, router http.Handler, method, target, body string, withToken bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if withToken {
		req.Header.Set("Authorization", "Bearer "+testBearerToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// Routing-level behaviour
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := do(t, router, http.MethodGet, "/api/health", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := do(t, router, http.MethodGet, "/api/health", "", false)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestTraceIDHeaderIsPropagated(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}

func TestAuthenticatedRoutesRejectMissingToken(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: acceptTestToken(t)},
	})

	targets := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/auth/profile"},
		{http.MethodPut, "/api/auth/password"},
		{http.MethodPost, "/api/books"},
		{http.MethodPut, "/api/books/1"},
		{http.MethodDelete, "/api/books/1"},
		{http.MethodPost, "/api/books/1/reviews"},
		{http.MethodPut, "/api/reviews/1"},
		{http.MethodDelete, "/api/reviews/1"},
		{http.MethodGet, "/api/users/stats"},
	}

	for _, tt := range targets {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.target, "", false)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Authentication required", decodeErrorMessage(t, rec))
		})
	}
}

func TestAuthMiddleware_InvalidTokenMessageDiffersFromMissing(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: acceptTestToken(t)},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer tampered.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeErrorMessage(t, rec))
}

func TestAuthMiddleware_BearerWithoutToken(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AuthService: &mockAuthService{parseTokenFn: acceptTestToken(t)},
	})

	for _, header := range []string{"Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication required", decodeErrorMessage(t, rec))
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
