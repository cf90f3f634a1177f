package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgAccountNotFoundErr  = "Account not found"
	ErrMsgPlotOccupiedError   = "That plot already has a crop growing"
	ErrMsgPlotNotReadyError   = "That plot is not ready to harvest"
	ErrMsgInvalidPlotError    = "Invalid plot number"
	ErrMsgUnknownCropError    = "Unknown crop type"
	ErrMsgNotEnoughMoneyError = "Not enough money"
	ErrMsgInvalidAmountError  = "Invalid amount"
	ErrMsgInvalidPlatformErr  = "Invalid platform"
	ErrMsgBusyTryAgainError   = "The farm is busy right now. Please try again."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal errors never leak; they all fold to the generic
// server error.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundErr
	case errors.Is(err, domain.ErrPlotOccupied):
		return http.StatusConflict, ErrMsgPlotOccupiedError
	case errors.Is(err, domain.ErrPlotNotReady):
		return http.StatusConflict, ErrMsgPlotNotReadyError
	case errors.Is(err, domain.ErrInvalidPlotIndex):
		return http.StatusBadRequest, ErrMsgInvalidPlotError
	case errors.Is(err, domain.ErrUnknownCropType):
		return http.StatusBadRequest, ErrMsgUnknownCropError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidPlatform):
		return http.StatusBadRequest, ErrMsgInvalidPlatformErr
	case errors.Is(err, domain.ErrConflict):
		// Only reachable after the service has exhausted its save retries.
		return http.StatusServiceUnavailable, ErrMsgBusyTryAgainError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
