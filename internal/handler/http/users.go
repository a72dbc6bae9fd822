package http

import (
	"net/http"

	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/internal/utils"
	"github.com/readreview/book-stack/models"
)

// listUsers serves the public account directory. The underlying query never
// selects password hashes, so no sanitization step is needed here.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	public := make([]models.User, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	utils.WriteJSON(w, public, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := pathID(r, "userID")
	if err != nil {
		log.Error().Str("reason", err.Error()).Msg("non-numeric user id")
		utils.WriteJSONError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, foundUser.Public(), http.StatusOK)
}

// stats reports how many books and reviews the calling user owns.
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := authUser(r)
	if !ok {
		utils.WriteJSONError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	userStats, err := h.services.UserService.Stats(ctx, actor.UserID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, userStats, http.StatusOK)
}
