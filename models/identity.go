package models

// AuthUser is the authenticated identity attached to a request context by
// the authentication middleware. It mirrors the claims embedded in the
// bearer token and is the only identity source for ownership checks.
type AuthUser struct {
	UserID   int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
