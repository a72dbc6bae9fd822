package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/readreview/book-stack/internal/service"
	"github.com/readreview/book-stack/internal/store"
	"github.com/readreview/book-stack/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrWrongCredentials, http.StatusUnauthorized},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{store.ErrUserAlreadyExists, http.StatusConflict},
		{store.ErrUserNotFound, http.StatusNotFound},
		{store.ErrBookNotFound, http.StatusNotFound},
		{store.ErrReviewNotFound, http.StatusNotFound},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{errors.New("anything unmapped"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), "error: %v", tt.err)
	}
}

func TestStatusFromError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("book search by id failed: %w", store.ErrBookNotFound)
	assert.Equal(t, http.StatusNotFound, statusFromError(wrapped))
}

func TestMessageFromError(t *testing.T) {
	assert.Equal(t, "Book not found", messageFromError(fmt.Errorf("x: %w", store.ErrBookNotFound)))
	assert.Equal(t, "Username or email already in use", messageFromError(store.ErrUserAlreadyExists))
	assert.Equal(t, "Internal server error", messageFromError(errors.New("pq: connection refused")))

	// validation failures surface the broken rule
	validationErr := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrPasswordTooShort)
	assert.Equal(t, validators.ErrPasswordTooShort.Error(), messageFromError(validationErr))

	descriptionErr := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyDescription)
	assert.Equal(t, validators.ErrEmptyDescription.Error(), messageFromError(descriptionErr))

	// bare validation error keeps the generic text
	assert.Equal(t, "invalid data provided", messageFromError(service.ErrInvalidDataProvided))
}
