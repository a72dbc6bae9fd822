package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrUsernameTooLong  = errors.New("username must be at most 50 characters")
	ErrInvalidEmail     = errors.New("a valid email is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyAuthor      = errors.New("author is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyBody        = errors.New("review body is required")
)
