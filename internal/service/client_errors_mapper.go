package service

import (
	"errors"
	"strings"

	"github.com/readreview/book-stack/internal/adapter"
	"github.com/readreview/book-stack/internal/store"
)

// mapAdapterError translates the adapter's transport error into the business
// error the rest of the client works with. Unrecognised errors pass through
// unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractDetail(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if strings.EqualFold(msg, "Invalid email or password") {
			return ErrWrongCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrForbidden

	case errors.Is(err, adapter.ErrNotFound):
		switch {
		case strings.Contains(msg, "Review"):
			return store.ErrReviewNotFound
		case strings.Contains(msg, "User"):
			return store.ErrUserNotFound
		default:
			return store.ErrBookNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		return store.ErrUserAlreadyExists
	}

	return err
}

// extractDetail extracts the server detail from a message of the form
// "<sentinel>: <detail>".
func extractDetail(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
