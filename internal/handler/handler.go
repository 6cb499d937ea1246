package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"inventory-tracker/internal/middleware"
	"inventory-tracker/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	requestID := middleware.RequestIDFromContext(r.Context())
	logger.Error().
		Str("error", message).
		Str("code", code).
		Int("status", status).
		Str("request_id", requestID).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message, RequestID: requestID})
}

// writeServiceError maps a service error to a response. Domain errors keep
// their message; anything else is a storage failure and is reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("storage failure")
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeStorage, "storage failure", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeInventoryNotFound, model.ErrCodeLocationNotFound, model.ErrCodeProductNotFound:
		status = http.StatusNotFound
	case model.ErrCodeValidation, model.ErrCodeMissingField, model.ErrCodeInvalidJSON, model.ErrCodeInvalidForm:
		status = http.StatusBadRequest
	}

	writeError(w, r, status, domainErr.Code, domainErr.Message, logger)
}
