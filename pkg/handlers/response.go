// Package handlers implements the HTTP surface of garagekeep.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/garagekeep/garagekeep/pkg/apperrors"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// respondError maps a service error onto the wire: validation failures become
// 400, missing entities 404, everything else an opaque 500.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error, action string) {
	var writeErr error
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		writeErr = ErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		writeErr = ErrorResponse(w, http.StatusNotFound, "not_found", err.Error())
	default:
		logger.Error("Request failed", zap.String("action", action), zap.Error(err))
		writeErr = ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Failed to "+action)
	}
	if writeErr != nil {
		logger.Error("Failed to write error response", zap.Error(writeErr))
	}
}

// parsePathID extracts a positive integer {id} path value. The bool result
// reports success; on failure a 400 response has already been written.
func parsePathID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_id", "Invalid ID in path"); err != nil {
			logger.Error("Failed to write error response", zap.Error(err))
		}
		return 0, false
	}
	return id, true
}
