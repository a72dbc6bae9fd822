package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongCredentials covers both unknown email and wrong password so
	// the response never reveals which one failed.
	ErrWrongCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrForbidden = errors.New("operation not permitted for this user")
)
