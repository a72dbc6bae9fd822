package models

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register (201) and login (200).
// User is always sanitized via [User.Public] before serialization.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// BookInput carries the caller-editable fields of a book.
// The owner is never part of the payload; it is taken from the
// authenticated identity.
type BookInput struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

// ReviewInput carries the caller-editable fields of a review.
type ReviewInput struct {
	Body string `json:"body"`
}

// UserStats reports how many books and reviews the calling user owns.
// Returned by GET /api/users/stats.
type UserStats struct {
	UserID      int64 `json:"userId"`
	BookCount   int64 `json:"bookCount"`
	ReviewCount int64 `json:"reviewCount"`
}

// ErrorResponse is the uniform error body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is the body of 2xx responses that carry no resource,
// e.g. DELETE confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
