package http

import (
	"encoding/json"
	"net/http"

	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/utils"
	"github.com/readreview/book-stack/models"
)

// listBooks serves the public catalogue, newest first. An optional ?search=
// query narrows the result to books whose title or author matches
// case-insensitively.
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	books, err := h.services.BookService.ListBooks(ctx, r.URL.Query().Get("search"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID, err := pathID(r, "bookID")
	if err != nil {
		log.Error().Str("reason", err.Error()).Msg("non-numeric book id")
		utils.WriteJSONError(w, "Invalid book id", http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.GetBook(ctx, bookID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := authUser(r)
	if !ok {
		utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	var input models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.BookService.CreateBook(ctx, actor, input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := authUser(r)
	if !ok {
		utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	bookID, err := pathID(r, "bookID")
	if err != nil {
		log.Error().Str("reason", err.Error()).Msg("non-numeric book id")
		utils.WriteJSONError(w, "Invalid book id", http.StatusBadRequest)
		return
	}

	var input models.BookInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.BookService.UpdateBook(ctx, actor, bookID, input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := authUser(r)
	if !ok {
		utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	bookID, err := pathID(r, "bookID")
	if err != nil {
		log.Error().Str("reason", err.Error()).Msg("non-numeric book id")
		utils.WriteJSONError(w, "Invalid book id", http.StatusBadRequest)
		return
	}

	if err := h.services.BookService.DeleteBook(ctx, actor, bookID); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Book deleted"}, http.StatusOK)
}
