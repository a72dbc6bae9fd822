package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/readreview/book-stack/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, book, http.StatusOK)
//	WriteJSON(w, models.MessageResponse{Message: "Review deleted"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteJSONError writes the uniform API error body {"message": "..."} with
// the given status code. Internal error detail must never be passed in
// message; callers log the underlying error and send a generic text here.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	//nolint:errcheck // nothing sensible to do if the error body fails to write
	WriteJSON(w, models.ErrorResponse{Message: message}, statusCode)
}
