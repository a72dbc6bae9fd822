package http

import (
	"encoding/json"
	"net/http"

	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/utils"
	"github.com/readreview/book-stack/models"
)

func (h *Handler) listBookReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	bookID, err := pathID(r, "bookID")
	if err != nil {
		log.Error().Str("reason", err.Error()).Msg("non-numeric book id")
		utils.WriteJSONError(w, "Invalid book id", http.StatusBadRequest)
		return
	}

	reviews, err := h.services.ReviewService.ListBookReviews(ctx, bookID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, reviews, http.StatusOK)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
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

	var input models.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ReviewService.CreateReview(ctx, actor, bookID, input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := authUser(r)
	if !ok {
		utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	reviewID, err := pathID(r, "reviewID")
	if err != nil {
		log.Error().Str("reason", err.Error()).Msg("non-numeric review id")
		utils.WriteJSONError(w, "Invalid review id", http.StatusBadRequest)
		return
	}

	var input models.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.ReviewService.UpdateReview(ctx, actor, reviewID, input)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := authUser(r)
	if !ok {
		utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	reviewID, err := pathID(r, "reviewID")
	if err != nil {
		log.Error().Str("reason", err.Error()).Msg("non-numeric review id")
		utils.WriteJSONError(w, "Invalid review id", http.StatusBadRequest)
		return
	}

	if err := h.services.ReviewService.DeleteReview(ctx, actor, reviewID); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Review deleted"}, http.StatusOK)
}
