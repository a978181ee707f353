package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app_errors "device-compare/internal/errors"
	"device-compare/internal/interfaces/mocks"
	"device-compare/internal/model"
	"device-compare/internal/testutil"
)

func TestNew(t *testing.T) {
	s := New(mocks.NewMockComparisonService(t))

	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err)
	assert.Nil(t, s.Comparison())
	assert.Empty(t, s.History())
}

func TestCompare(t *testing.T) {
	t.Run("Success replaces comparison and clears history", func(t *testing.T) {
		svc := mocks.NewMockComparisonService(t)
		s := New(svc)
		s.comparison = &model.ComparisonResult{Summary: "old"}
		s.history = testutil.SampleHistory()

		svc.On("RequestComparison", mock.Anything, "iPhone 15 Pro", "Pixel 8 Pro").
			Return(testutil.SampleComparison(), nil).Once()

		result, err := s.Compare(context.Background(), "iPhone 15 Pro", "Pixel 8 Pro")

		require.NoError(t, err)
		assert.Equal(t, testutil.SampleComparison(), result)
		assert.Equal(t, result, s.Comparison())
		assert.Empty(t, s.History())
	})

	t.Run("Failure keeps previous state", func(t *testing.T) {
		svc := mocks.NewMockComparisonService(t)
		s := New(svc)
		previous := testutil.SampleComparison()
		s.comparison = previous
		s.history = testutil.SampleHistory()

		svc.On("RequestComparison", mock.Anything, "A", "B").
			Return(nil, fmt.Errorf("%w: timeout", app_errors.ErrBackendUnavailable)).Once()

		result, err := s.Compare(context.Background(), "A", "B")

		require.ErrorIs(t, err, app_errors.ErrBackendUnavailable)
		assert.Nil(t, result)
		assert.Same(t, previous, s.Comparison())
		assert.Equal(t, testutil.SampleHistory(), s.History())
	})
}

func TestAsk(t *testing.T) {
	t.Run("Success appends question and answer", func(t *testing.T) {
		svc := mocks.NewMockComparisonService(t)
		s := New(svc)
		s.comparison = testutil.SampleComparison()

		expectedSent := model.ChatHistory{{Role: model.RoleUser, Content: "Which has more RAM?"}}
		svc.On("SendFollowUp", mock.Anything, s.comparison, expectedSent).
			Return("The Pixel 8 Pro, with 12GB.", nil).Once()

		answer, err := s.Ask(context.Background(), "Which has more RAM?")

		require.NoError(t, err)
		assert.Equal(t, "The Pixel 8 Pro, with 12GB.", answer)
		assert.Equal(t, model.ChatHistory{
			{Role: model.RoleUser, Content: "Which has more RAM?"},
			{Role: model.RoleModel, Content: "The Pixel 8 Pro, with 12GB."},
		}, s.History())
	})

	t.Run("Failure rolls back the question", func(t *testing.T) {
		svc := mocks.NewMockComparisonService(t)
		s := New(svc)
		s.comparison = testutil.SampleComparison()
		s.history = model.ChatHistory{
			{Role: model.RoleUser, Content: "Which has the better zoom?"},
			{Role: model.RoleModel, Content: "The Pixel 8 Pro."},
		}
		before := s.History()

		svc.On("SendFollowUp", mock.Anything, mock.Anything, mock.Anything).
			Return("", fmt.Errorf("%w: 503", app_errors.ErrBackendUnavailable)).Once()

		_, err := s.Ask(context.Background(), "And battery life?")

		require.ErrorIs(t, err, app_errors.ErrBackendUnavailable)
		assert.Equal(t, before, s.History())
		last, ok := s.History().Last()
		require.True(t, ok)
		assert.Equal(t, model.RoleModel, last.Role)
	})

	t.Run("Sent history ends with the new question", func(t *testing.T) {
		svc := mocks.NewMockComparisonService(t)
		s := New(svc)
		s.comparison = testutil.SampleComparison()
		s.history = model.ChatHistory{
			{Role: model.RoleUser, Content: "q1"},
			{Role: model.RoleModel, Content: "a1"},
		}

		svc.On("SendFollowUp", mock.Anything, mock.Anything, mock.MatchedBy(func(h model.ChatHistory) bool {
			last, ok := h.Last()
			return ok && len(h) == 3 && last.Role == model.RoleUser && last.Content == "q2"
		})).Return("a2", nil).Once()

		_, err := s.Ask(context.Background(), "q2")
		require.NoError(t, err)
		assert.Len(t, s.History(), 4)
	})

	t.Run("Blank question", func(t *testing.T) {
		s := New(mocks.NewMockComparisonService(t))
		s.comparison = testutil.SampleComparison()

		_, err := s.Ask(context.Background(), "   ")

		require.ErrorIs(t, err, app_errors.ErrInputInvalid)
		assert.Empty(t, s.History())
	})

	t.Run("No comparison yet", func(t *testing.T) {
		s := New(mocks.NewMockComparisonService(t))

		_, err := s.Ask(context.Background(), "Which is better?")

		require.ErrorIs(t, err, ErrNoComparison)
		require.ErrorIs(t, err, app_errors.ErrInputInvalid)
		assert.Empty(t, s.History())
	})
}

func TestBusyGuard(t *testing.T) {
	svc := mocks.NewMockComparisonService(t)
	s := New(svc)
	s.comparison = testutil.SampleComparison()

	started := make(chan struct{})
	unblock := make(chan struct{})
	svc.On("SendFollowUp", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-unblock
		}).
		Return("answer", nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := s.Ask(context.Background(), "first")
		done <- err
	}()
	<-started

	_, err := s.Ask(context.Background(), "second")
	assert.ErrorIs(t, err, ErrBusy)
	_, err = s.Compare(context.Background(), "A", "B")
	assert.ErrorIs(t, err, ErrBusy)

	close(unblock)
	require.NoError(t, <-done)
	assert.Len(t, s.History(), 2)
}

func TestHistoryReturnsCopy(t *testing.T) {
	s := New(mocks.NewMockComparisonService(t))
	s.history = testutil.SampleHistory()

	h := s.History()
	h[0].Content = "mutated"

	assert.Equal(t, testutil.SampleHistory(), s.History())
}
