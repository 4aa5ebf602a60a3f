package handlers

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/camden-git/metagridexport/logging"
)

const contentTypeJSON = "application/json; charset=utf-8"

// APIError is the body of an error response the spider can read.
type APIError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logging.Error().Err(err).Msg("error encoding JSON response")
		}
	}
}

// WriteAPIError writes {"error": msg} with the given status.
func WriteAPIError(w http.ResponseWriter, httpStatus int, msg string) {
	writeJSON(w, httpStatus, APIError{Error: msg})
}
