package llm

import (
	"context"

	"device-compare/internal/model"
	"device-compare/internal/schema"
)

// Provider defines the interface for interacting with the generation backend.
// The backend is stateless: every Chat call carries the full history.
type Provider interface {
	// GenerateJSON sends a single prompt constrained by the given output schema
	// and returns the raw text of the answer, expected to be JSON.
	GenerateJSON(ctx context.Context, prompt string, outputSchema *schema.Node) (string, error)
	// Chat replays history into a fresh conversation configured with the
	// system instruction, sends message and returns the plain-text answer.
	Chat(ctx context.Context, systemInstruction string, history []model.ChatMessage, message string) (string, error)
}
