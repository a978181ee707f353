package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	app_errors "device-compare/internal/errors"
	"device-compare/internal/interfaces"
	"device-compare/internal/model"
)

// ErrBusy is returned when an operation is started while another is in flight.
var ErrBusy = errors.New("another request is already in progress")

// ErrNoComparison is returned by Ask before any comparison has succeeded.
var ErrNoComparison = fmt.Errorf("%w: no comparison to ask about", app_errors.ErrInputInvalid)

// Session holds the client-side state of one comparison and its follow-up chat.
// Only one operation may be outstanding at a time.
type Session struct {
	ID string

	service interfaces.ComparisonService

	mu         sync.Mutex
	busy       bool
	comparison *model.ComparisonResult
	history    model.ChatHistory
}

// New creates an empty session backed by service.
func New(service interfaces.ComparisonService) *Session {
	return &Session{
		ID:      uuid.NewString(),
		service: service,
	}
}

// Compare requests a new comparison. On success it replaces the current
// comparison and clears the chat history; on failure the previous state is kept.
func (s *Session) Compare(ctx context.Context, device1Name, device2Name string) (*model.ComparisonResult, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()

	logger := slog.With("session_id", s.ID)
	logger.Debug("Requesting comparison", "device1", device1Name, "device2", device2Name)

	result, err := s.service.RequestComparison(ctx, device1Name, device2Name)
	if err != nil {
		logger.Warn("Comparison failed", "error_kind", app_errors.Kind(err), "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.comparison = result
	s.history = nil
	s.mu.Unlock()

	logger.Info("Comparison stored", "device1", result.Device1.Name, "device2", result.Device2.Name)
	return result, nil
}

// Ask appends question to the history and sends it. The model's answer is
// appended on success; on failure the question is removed again so the
// history never ends on an unanswered user turn.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: question is empty", app_errors.ErrInputInvalid)
	}
	if err := s.acquire(); err != nil {
		return "", err
	}
	defer s.release()

	s.mu.Lock()
	if s.comparison == nil {
		s.mu.Unlock()
		return "", ErrNoComparison
	}
	comparison := s.comparison
	s.history = append(s.history, model.ChatMessage{Role: model.RoleUser, Content: question})
	pending := len(s.history)
	snapshot := make(model.ChatHistory, pending)
	copy(snapshot, s.history)
	s.mu.Unlock()

	logger := slog.With("session_id", s.ID)
	answer, err := s.service.SendFollowUp(ctx, comparison, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.history = s.history[:pending-1]
		logger.Warn("Follow-up failed, question rolled back", "error_kind", app_errors.Kind(err), "error", err)
		return "", err
	}
	s.history = append(s.history, model.ChatMessage{Role: model.RoleModel, Content: answer})
	logger.Debug("Follow-up answered", "history_len", len(s.history))
	return answer, nil
}

// Comparison returns the current comparison, or nil before the first success.
func (s *Session) Comparison() *model.ComparisonResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comparison
}

// History returns a copy of the chat history.
func (s *Session) History() model.ChatHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(model.ChatHistory, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

func (s *Session) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
