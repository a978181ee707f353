package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	app_errors "device-compare/internal/errors"
	"device-compare/internal/llm"
	"device-compare/internal/model"
	"device-compare/internal/prompt"
	"device-compare/internal/schema"
	"device-compare/internal/validation"
)

// ComparisonService turns device names into structured comparisons and
// answers follow-up questions grounded in them. It keeps no state between
// calls; every follow-up replays the full conversation to the backend.
type ComparisonService struct {
	llm    llm.Provider
	schema *schema.Node
}

func NewComparisonService(provider llm.Provider, outputSchema *schema.Node) *ComparisonService {
	return &ComparisonService{llm: provider, schema: outputSchema}
}

// RequestComparison asks the backend for a structured comparison of the two
// devices. Blank names fail with ErrInputInvalid before any backend call.
// Exactly one backend attempt is made.
//
// The returned device names are not checked against the requested ones; the
// prompt asks the model to match them, but that is left to the model.
func (s *ComparisonService) RequestComparison(ctx context.Context, device1Name, device2Name string) (*model.ComparisonResult, error) {
	device1Name = strings.TrimSpace(device1Name)
	device2Name = strings.TrimSpace(device2Name)
	if device1Name == "" || device2Name == "" {
		return nil, fmt.Errorf("%w: device names are required", app_errors.ErrInputInvalid)
	}

	p := prompt.BuildComparisonPrompt(device1Name, device2Name)
	raw, err := s.llm.GenerateJSON(ctx, p, s.schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", app_errors.ErrBackendUnavailable, err)
	}

	result, err := ParseComparison(raw)
	if err != nil {
		slog.Warn("Backend returned an unusable comparison", "device1", device1Name, "device2", device2Name, "error", err)
		return nil, err
	}

	slog.Info("Comparison generated", "device1", result.Device1.Name, "device2", result.Device2.Name)
	return result, nil
}

// SendFollowUp answers the last (user) message of history, grounded in comparison.
func (s *ComparisonService) SendFollowUp(ctx context.Context, comparison *model.ComparisonResult, history model.ChatHistory) (string, error) {
	if comparison == nil {
		return "", fmt.Errorf("%w: chat context is required", app_errors.ErrInputInvalid)
	}

	contextMessages, message, err := ReconstructHistory(comparison, history)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: follow-up message is empty", app_errors.ErrInputInvalid)
	}

	answer, err := s.llm.Chat(ctx, prompt.SystemInstruction, contextMessages, message)
	if err != nil {
		return "", fmt.Errorf("%w: %w", app_errors.ErrBackendUnavailable, err)
	}
	if strings.TrimSpace(answer) == "" {
		return "", fmt.Errorf("%w: empty follow-up answer", app_errors.ErrMalformedResponse)
	}

	slog.Debug("Follow-up answered", "history_len", len(history), "answer_len", len(answer))
	return answer, nil
}

// ParseComparison decodes the backend's JSON text into a ComparisonResult and
// checks that every required field is present.
func ParseComparison(raw string) (*model.ComparisonResult, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty response body", app_errors.ErrMalformedResponse)
	}

	var result model.ComparisonResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("%w: could not decode comparison: %w", app_errors.ErrMalformedResponse, err)
	}
	if err := validation.Struct(&result, app_errors.ErrMalformedResponse); err != nil {
		return nil, err
	}
	return &result, nil
}

// stripCodeFence removes a surrounding Markdown code fence, which some models
// add even in JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
