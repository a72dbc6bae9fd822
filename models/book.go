package models

import "time"

// Book is a catalogued title submitted by a registered user.
// OwnerUserID is set from the authenticated identity at creation time and
// is immutable afterwards; it is the sole authorization predicate for
// update and delete operations.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`

	// OwnerUserID references the user who added the book.
	// Never taken from a request body.
	OwnerUserID int64 `json:"ownerUserId"`

	// ReviewCount is a derived field populated by list/get queries.
	ReviewCount int64 `json:"reviewCount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}
