package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services wrap these with fmt.Errorf("%w: ...") so callers can recognise the
// failure kind with `errors.Is()` without depending on HTTP status codes or on
// the generation backend's own error types. The API layer maps them to
// responses, the terminal client maps them to user-facing messages.

var (
	// ErrInputInvalid signifies that the caller supplied empty or missing input
	// (a blank device name, an empty follow-up question). It is detected before
	// any call to the generation backend.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrInputInvalid = errors.New("invalid input")

	// ErrInvalidChatState signifies a caller contract violation on a follow-up:
	// the chat history is empty or does not end on a user turn.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrInvalidChatState = errors.New("invalid chat state")

	// ErrBackendUnavailable signifies that the generation backend could not be
	// reached or reported a failure (network error, non-success status, timeout).
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrBackendUnavailable = errors.New("generation backend unavailable")

	// ErrMalformedResponse signifies that the backend answered successfully but
	// the body could not be parsed or lacked required structured fields.
	// Users see the same generic message as for ErrBackendUnavailable; the
	// distinction only shows up in logs.
	ErrMalformedResponse = errors.New("malformed backend response")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)

// Kind returns a short, stable label for the sentinel wrapped by err.
// It is used as a structured log attribute.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInputInvalid):
		return "input_invalid"
	case errors.Is(err, ErrInvalidChatState):
		return "invalid_chat_state"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, ErrBackendUnavailable):
		return "backend_unavailable"
	default:
		return "internal"
	}
}
