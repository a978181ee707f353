package service

import (
	"encoding/json"
	"fmt"

	app_errors "device-compare/internal/errors"
	"device-compare/internal/model"
	"device-compare/internal/prompt"
)

// ReconstructHistory rebuilds the conversation the backend needs for a
// follow-up turn. The backend keeps nothing between calls, so every turn
// replays:
//
//  1. the original comparison prompt as a user turn,
//  2. the comparison itself as a model turn (indented JSON),
//  3. every message of history in order.
//
// The final message must be a user turn; it is detached and returned as
// newMessage, everything before it is returned as contextMessages.
func ReconstructHistory(comparison *model.ComparisonResult, history model.ChatHistory) (contextMessages []model.ChatMessage, newMessage string, err error) {
	if comparison == nil {
		return nil, "", fmt.Errorf("%w: chat context is required", app_errors.ErrInputInvalid)
	}
	last, ok := history.Last()
	if !ok {
		return nil, "", fmt.Errorf("%w: chat history is empty", app_errors.ErrInvalidChatState)
	}
	if last.Role != model.RoleUser {
		return nil, "", fmt.Errorf("%w: last message must be from user, got %q", app_errors.ErrInvalidChatState, last.Role)
	}
	for i, msg := range history {
		if !msg.Role.Valid() {
			return nil, "", fmt.Errorf("%w: message %d has unknown role %q", app_errors.ErrInvalidChatState, i, msg.Role)
		}
	}

	grounding, err := json.MarshalIndent(comparison, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("%w: could not encode comparison: %w", app_errors.ErrInternal, err)
	}

	contextMessages = make([]model.ChatMessage, 0, len(history)+1)
	contextMessages = append(contextMessages,
		model.ChatMessage{Role: model.RoleUser, Content: prompt.BuildComparisonPrompt(comparison.Device1.Name, comparison.Device2.Name)},
		model.ChatMessage{Role: model.RoleModel, Content: string(grounding)},
	)
	contextMessages = append(contextMessages, history[:len(history)-1]...)

	return contextMessages, last.Content, nil
}
