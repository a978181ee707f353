package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "device-compare/internal/errors"
	"device-compare/internal/model"
)

// This file contains shared DTOs (Data Transfer Objects) for API requests and
// responses, and helper functions for sending consistent HTTP responses.

// GenericAIErrorMessage is shown for every backend failure, whatever its kind.
const GenericAIErrorMessage = "An error occurred with the AI service."

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid action specified."`
}

// StatusResponse defines a generic success response.
type StatusResponse struct {
	Status string `json:"status"`
}

// ActionRequest is the body accepted by the single Gemini endpoint. The
// fields used depend on Action.
type ActionRequest struct {
	Action      string                  `json:"action" example:"compare"`
	Device1Name string                  `json:"device1Name,omitempty" example:"iPhone 15 Pro"`
	Device2Name string                  `json:"device2Name,omitempty" example:"Pixel 8 Pro"`
	ChatContext *model.ComparisonResult `json:"chatContext,omitempty"`
	ChatHistory model.ChatHistory       `json:"chatHistory,omitempty"`
}

// Request actions.
const (
	ActionCompare = "compare"
	ActionChat    = "chat"
)

// compareRequest is the validated form of a compare action.
type compareRequest struct {
	Device1Name string `json:"device1Name" validate:"required"`
	Device2Name string `json:"device2Name" validate:"required"`
}

// chatRequest is the validated form of a chat action.
type chatRequest struct {
	ChatContext *model.ComparisonResult `json:"chatContext" validate:"required"`
	ChatHistory model.ChatHistory       `json:"chatHistory" validate:"required,dive"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps business-layer errors to HTTP status codes and a standard JSON body.
// Backend failures of every kind share one generic message; the kind is logged.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrInputInvalid), errors.Is(err, app_errors.ErrInvalidChatState):
		statusCode = http.StatusBadRequest
		// For validation errors, the message from the service layer is
		// already descriptive and safe to show.
		message = err.Error()
	case errors.Is(err, app_errors.ErrBackendUnavailable), errors.Is(err, app_errors.ErrMalformedResponse):
		statusCode = http.StatusInternalServerError
		message = GenericAIErrorMessage
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error",
		"status_code", statusCode,
		"error_kind", app_errors.Kind(err),
		"client_message", message,
		"internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// methodNotAllowed answers every non-POST request to the Gemini endpoint.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	respondWithJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method Not Allowed"})
}
