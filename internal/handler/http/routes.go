package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/books", h.listBooks)
		r.Get("/api/books/{bookID}", h.getBook)
		r.Get("/api/books/{bookID}/reviews", h.listBookReviews)

		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/{userID}", h.getUser)

		r.Get("/api/health", h.health)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/profile", h.profile)
		r.Put("/api/auth/password", h.changePassword)

		r.Post("/api/books", h.createBook)
		r.Put("/api/books/{bookID}", h.updateBook)
		r.Delete("/api/books/{bookID}", h.deleteBook)

		r.Post("/api/books/{bookID}/reviews", h.createReview)
		r.Put("/api/reviews/{reviewID}", h.updateReview)
		r.Delete("/api/reviews/{reviewID}", h.deleteReview)

		r.Get("/api/users/stats", h.stats)
	})

	return router
}
