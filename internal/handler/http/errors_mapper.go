package http

import (
	"errors"
	"net/http"

	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/service"
	"github.com/readreview/book-stack/internal/store"
	"github.com/readreview/book-stack/internal/utils"
	"github.com/readreview/book-stack/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrBookNotFound:      http.StatusNotFound,
	store.ErrReviewNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrWrongCredentials:        "Invalid email or password",
	service.ErrTokenIsExpiredOrInvalid: "Invalid or expired token",
	service.ErrForbidden:               "Forbidden",

	store.ErrUserAlreadyExists: "Username or email already in use",
	store.ErrUserNotFound:      "User not found",
	store.ErrBookNotFound:      "Book not found",
	store.ErrReviewNotFound:    "Review not found",
}

// validationErrors lists the validator sentinels whose text is safe to show
// to API callers verbatim.
var validationErrors = []error{
	validators.ErrUsernameTooShort,
	validators.ErrUsernameTooLong,
	validators.ErrInvalidEmail,
	validators.ErrPasswordTooShort,
	validators.ErrEmptyTitle,
	validators.ErrEmptyAuthor,
	validators.ErrEmptyDescription,
	validators.ErrEmptyBody,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError resolves the public message for err. Validation failures
// surface the concrete rule that was broken; everything unmapped collapses
// to a generic internal error message so no storage detail leaks.
func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}

	if errors.Is(err, service.ErrInvalidDataProvided) {
		for _, target := range validationErrors {
			if errors.Is(err, target) {
				return target.Error()
			}
		}
		return service.ErrInvalidDataProvided.Error()
	}

	return "Internal server error"
}

// respondError logs err and writes the uniform {"message": ...} error body
// with the status resolved from the error taxonomy.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Error().Str("reason", err.Error()).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSONError(w, messageFromError(err), status)
}
