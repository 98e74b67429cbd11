package api

import (
	"encoding/json"
	"net/http"

	"github.com/nauticalab/epiceditor-config/internal/logger"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.FromRequest(r).Error().Err(err).Msg("failed to encode JSON response")
		}
	}
}

// respondError sends an error response in JSON format
func respondError(w http.ResponseWriter, r *http.Request, code int, message string) {
	respondJSON(w, r, code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	})
}

// respondNotFound sends a 404 Not Found error
func respondNotFound(w http.ResponseWriter, r *http.Request, message string) {
	respondError(w, r, http.StatusNotFound, message)
}

// respondSuccess sends a 200 OK with payload
func respondSuccess(w http.ResponseWriter, r *http.Request, payload any) {
	respondJSON(w, r, http.StatusOK, payload)
}
