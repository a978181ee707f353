package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"device-compare/internal/api"
	app_errors "device-compare/internal/errors"
	"device-compare/internal/model"
	"device-compare/internal/validation"
)

// UnknownErrorMessage is used when a failed response carries no readable error body.
const UnknownErrorMessage = "An unknown error occurred."

const endpointPath = "/api/gemini"

// Fallbacks for a JSON error body that carries no message.
const (
	compareFailedMessage = "Failed to fetch comparison from the server."
	chatFailedMessage    = "Failed to send follow-up message to the server."
)

// Client talks to a running device-compare server. It satisfies
// interfaces.ComparisonService so callers can swap it for the in-process service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL (e.g. "http://localhost:8000").
// A nil httpClient gets a default one with the given timeout.
func New(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// RequestComparison posts a compare action and decodes the structured result.
// Blank names fail with ErrInputInvalid without contacting the server, and a
// success body missing any required field fails with ErrMalformedResponse.
func (c *Client) RequestComparison(ctx context.Context, device1Name, device2Name string) (*model.ComparisonResult, error) {
	device1Name = strings.TrimSpace(device1Name)
	device2Name = strings.TrimSpace(device2Name)
	if device1Name == "" || device2Name == "" {
		return nil, fmt.Errorf("%w: device names are required", app_errors.ErrInputInvalid)
	}

	body := api.ActionRequest{
		Action:      api.ActionCompare,
		Device1Name: device1Name,
		Device2Name: device2Name,
	}

	var result model.ComparisonResult
	if err := c.post(ctx, body, compareFailedMessage, &result); err != nil {
		return nil, err
	}
	if err := validation.Struct(&result, app_errors.ErrMalformedResponse); err != nil {
		slog.Debug("Server returned an incomplete comparison", "error", err)
		return nil, err
	}
	return &result, nil
}

// SendFollowUp posts a chat action with the full comparison and history.
func (c *Client) SendFollowUp(ctx context.Context, comparison *model.ComparisonResult, history model.ChatHistory) (string, error) {
	body := api.ActionRequest{
		Action:      api.ActionChat,
		ChatContext: comparison,
		ChatHistory: history,
	}

	var resp model.ChatResponse
	if err := c.post(ctx, body, chatFailedMessage, &resp); err != nil {
		return "", err
	}
	if resp.Response == "" {
		return "", fmt.Errorf("%w: chat response has no text", app_errors.ErrMalformedResponse)
	}
	return resp.Response, nil
}

func (c *Client) post(ctx context.Context, payload api.ActionRequest, fallback string, out interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: could not encode request: %w", app_errors.ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpointPath, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("%w: could not build request: %w", app_errors.ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", app_errors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := readErrorMessage(resp.Body, fallback)
		slog.Debug("Server returned an error", "action", payload.Action, "status", resp.StatusCode, "message", message)
		if resp.StatusCode == http.StatusBadRequest {
			return fmt.Errorf("%w: %s", app_errors.ErrInputInvalid, message)
		}
		return fmt.Errorf("%w: %s", app_errors.ErrBackendUnavailable, message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: could not decode response: %w", app_errors.ErrMalformedResponse, err)
	}
	return nil
}

// readErrorMessage extracts the "error" field of a failed response body.
func readErrorMessage(body io.Reader, fallback string) string {
	var errResp api.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, 1<<20)).Decode(&errResp); err != nil {
		return UnknownErrorMessage
	}
	if errResp.Error == "" {
		return fallback
	}
	return errResp.Error
}

// Message returns the server-provided text carried by a client error, without
// the sentinel prefix. It falls back to the error string itself.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{app_errors.ErrInputInvalid, app_errors.ErrBackendUnavailable} {
		if errors.Is(err, sentinel) {
			return strings.TrimPrefix(msg, sentinel.Error()+": ")
		}
	}
	return msg
}
