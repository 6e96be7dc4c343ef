package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRetry(inner Provider, attempts int) (*RetryProvider, *[]time.Duration) {
	r := WithRetry(inner, RetryConfig{
		MaxAttempts: attempts,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     time.Second,
		Multiplier:  2,
	}, 0)
	var waits []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits
}

var okContent = json.RawMessage(`"ok"`)

func TestRetry_FirstAttempt(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: okContent})
	r, waits := testRetry(mock, 3)

	resp, err := r.Generate(context.Background(), prompt())
	require.NoError(t, err)
	assert.Equal(t, okContent, resp.Content)
	assert.Len(t, mock.Calls(), 1)
	assert.Empty(t, *waits)
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &UnavailableError{}},
		MockResponse{Err: &RateLimitError{}},
		MockResponse{Content: okContent},
	)
	r, waits := testRetry(mock, 3)

	_, err := r.Generate(context.Background(), prompt())
	require.NoError(t, err)
	assert.Len(t, mock.Calls(), 3)
	require.Len(t, *waits, 2)
	assert.InDelta(t, float64(100*time.Millisecond), float64((*waits)[0]), float64(20*time.Millisecond))
	assert.InDelta(t, float64(200*time.Millisecond), float64((*waits)[1]), float64(40*time.Millisecond))
}

func TestRetry_GivesUp(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &UnavailableError{}},
		MockResponse{Err: &UnavailableError{}},
		MockResponse{Err: &UnavailableError{}},
	)
	r, waits := testRetry(mock, 3)

	_, err := r.Generate(context.Background(), prompt())
	var down *UnavailableError
	assert.ErrorAs(t, err, &down)
	assert.Len(t, mock.Calls(), 3)
	assert.Len(t, *waits, 2)
}

func TestRetry_NotRetried(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"truncated", &TruncatedError{}},
		{"canceled", context.Canceled},
		{"client error", errors.New("anthropic: 400 bad request")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(MockResponse{Err: tt.err}, MockResponse{Content: okContent})
			r, _ := testRetry(mock, 3)
			_, err := r.Generate(context.Background(), prompt())
			assert.ErrorIs(t, err, tt.err)
			assert.Len(t, mock.Calls(), 1)
		})
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &InvalidResponseError{Err: errors.New("bad")}},
		MockResponse{Err: &InvalidResponseError{Err: errors.New("bad again")}},
		MockResponse{Content: okContent},
	)
	r, _ := testRetry(mock, 5)

	_, err := r.Generate(context.Background(), prompt())
	var invalid *InvalidResponseError
	assert.ErrorAs(t, err, &invalid)
	assert.Len(t, mock.Calls(), 2)
}

func TestRetry_RespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &RateLimitError{RetryAfter: 3 * time.Second}},
		MockResponse{Content: okContent},
	)
	r, waits := testRetry(mock, 2)

	_, err := r.Generate(context.Background(), prompt())
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Second}, *waits)
}

func TestRetry_BackoffCapped(t *testing.T) {
	r, _ := testRetry(NewMockProvider(), 10)
	for attempt := range 10 {
		assert.LessOrEqual(t, r.backoff(attempt, &UnavailableError{}), 1200*time.Millisecond)
	}
}

func TestRetry_ContextCanceledDuringWait(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &UnavailableError{}}, MockResponse{Content: okContent})
	r := WithRetry(mock, RetryConfig{MaxAttempts: 2, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1}, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := r.Generate(ctx, prompt())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, mock.Calls(), 1)
}

func TestRetry_Delegates(t *testing.T) {
	r, _ := testRetry(NewMockProvider(), 1)
	assert.Equal(t, "mock", r.Name())
	assert.Equal(t, "mock", r.ModelID())
}
