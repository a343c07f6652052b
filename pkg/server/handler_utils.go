package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/celarium/celarium/pkg/models"
)

// APIError represents an error response body.
type APIError struct {
	Message string `json:"message"`
}

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct.
func decodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// renderError renders an error response.
func renderError(w http.ResponseWriter, err error, status int) {
	if status != http.StatusNotFound {
		// Don't log not found errors
		log.Error(err)
	}
	http.Error(w, err.Error(), status)
}

// renderSessionError maps session store errors onto their HTTP statuses:
// unknown session 404, owner mismatch 401, expired 410.
func renderSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		renderError(w, err, http.StatusNotFound)
	case errors.Is(err, models.ErrUnauthorized):
		renderError(w, err, http.StatusUnauthorized)
	case errors.Is(err, models.ErrSessionExpired):
		renderError(w, err, http.StatusGone)
	default:
		renderError(w, err, http.StatusInternalServerError)
	}
}
