package http

import (
	"net/http"

	"github.com/readreview/book-stack/internal/utils"
	"github.com/readreview/book-stack/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "ok",
		Message: "book-stack API is running",
	}, http.StatusOK)
}
