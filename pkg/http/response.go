package http

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/Akashajay-dot/Velocity-pro-audio/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	// No recovery possible after WriteHeader; return so the caller can log.
	return json.NewEncoder(w).Encode(data)
}

// WriteError converts any error to its client-visible form. AppErrors carry
// their own status and safe message; everything else is reported as an opaque
// internal failure so store internals never leak to callers.
func WriteError(w http.ResponseWriter, err error) error {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return WriteJSON(w, appErr.StatusCode(), ErrorResponse{
			Error:   appErr.Message,
			Details: appErr.Details,
		})
	}
	return WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: "Internal server error",
	})
}
