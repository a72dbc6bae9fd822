package models

import "time"

// Review is a user-authored review attached to an existing book.
// AuthorUserID is set from the authenticated identity at creation time
// and is immutable afterwards; only the author may update or delete
// the review.
type Review struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`

	// BookID references the reviewed book. The book must exist when the
	// review is created.
	BookID int64 `json:"bookId"`

	// AuthorUserID references the user who wrote the review.
	// Never taken from a request body.
	AuthorUserID int64 `json:"authorUserId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}
