package interfaces

import (
	"context"

	"device-compare/internal/model"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, lets the
// HTTP layer, the session state and the terminal client work the same way
// against the in-process service or the remote HTTP client, and keeps them
// easy to test with mocks.

// ComparisonService defines the contract for comparison and follow-up logic.
type ComparisonService interface {
	RequestComparison(ctx context.Context, device1Name, device2Name string) (*model.ComparisonResult, error)
	SendFollowUp(ctx context.Context, comparison *model.ComparisonResult, history model.ChatHistory) (string, error)
}
