package tui

import (
	"github.com/readreview/book-stack/models"
)

// NavigateTo switches the root router to another page. An optional Payload is
// delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult is produced by the login and register pages when the async
// server call completes. A nil Err finishes the authentication flow.
type AuthResult struct {
	Err  error
	User models.User
}

type booksLoadedMsg struct {
	books []models.Book
	err   error
}

type bookDetailLoadedMsg struct {
	book    models.Book
	reviews []models.Review
	err     error
}

type bookSavedMsg struct {
	book models.Book
	err  error
}

type bookDeletedMsg struct {
	err error
}

type reviewSavedMsg struct {
	err error
}

type reviewDeletedMsg struct {
	err error
}

type statsLoadedMsg struct {
	stats models.UserStats
	err   error
}
