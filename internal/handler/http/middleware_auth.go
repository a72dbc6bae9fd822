// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/utils"
	"github.com/readreview/book-stack/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated identity in the request context under
// [utils.AuthUserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in two distinct
// shapes:
//   - No credential at all: the "Authorization" header is absent, cannot be
//     split into scheme and token, or carries an empty token. The token is
//     never verified in this case.
//   - Invalid credential: a token is present but expired, badly signed, or
//     issued by the wrong party.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Error().Str("reason", ErrEmptyAuthorizationHeader.Error()).Send()
			utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Error().Str("reason", err.Error()).Send()
			utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Error().Str("reason", err.Error()).Msg("error occurred during parsing token")
			utils.WriteJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.AuthUserCtxKey, models.AuthUser{
			UserID:   token.UserID,
			Email:    token.Claims.Email,
			Username: token.Claims.Username,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// authUser returns the identity attached by the auth middleware. The bool is
// false on routes that were not wrapped by it.
func authUser(r *http.Request) (models.AuthUser, bool) {
	return utils.GetAuthUserFromContext(r.Context())
}
