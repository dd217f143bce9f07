package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrUnavailable{Err: errors.New("upstream 503")}},
		MockReply{Err: &ErrRateLimit{}},
		MockReply{Text: "ok"},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Chat(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, "ok", resp.Text)
	require.Equal(t, 3, mock.CallCount())
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Err: &ErrUnavailable{}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Chat(context.Background(), Request{})

	var unavailable *ErrUnavailable
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, 3, mock.CallCount())
}

func TestRetryDoesNotRetryClientErrors(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrTransport{Status: 401, Body: "bad key"}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Chat(context.Background(), Request{})

	var tr *ErrTransport
	require.ErrorAs(t, err, &tr)
	require.Equal(t, 401, tr.Status)
	require.Equal(t, 1, mock.CallCount())
}

func TestRetryDoesNotRetryEmptyResponse(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrEmptyResponse{}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Chat(context.Background(), Request{})

	var empty *ErrEmptyResponse
	require.ErrorAs(t, err, &empty)
	require.Equal(t, 1, mock.CallCount())
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Text: "never reached"},
	)
	cfg := fastRetryConfig()
	cfg.InitialWait = time.Second

	p := WithRetry(mock, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Chat(ctx, Request{})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, mock.CallCount())
}

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limit", &ErrRateLimit{}, true},
		{"unavailable", &ErrUnavailable{}, true},
		{"plain network error", errors.New("connection refused"), true},
		{"transport 4xx", &ErrTransport{Status: 400}, false},
		{"empty response", &ErrEmptyResponse{}, false},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldRetry(tt.err); got != tt.want {
				t.Errorf("shouldRetry(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestBackoffRespectsRetryAfter(t *testing.T) {
	p := &RetryProvider{config: fastRetryConfig()}

	wait := p.backoff(0, &ErrRateLimit{RetryAfter: 42 * time.Millisecond})
	require.Equal(t, 42*time.Millisecond, wait)
}

func TestBackoffIsCappedWithJitter(t *testing.T) {
	p := &RetryProvider{config: RetryConfig{
		MaxAttempts: 5,
		InitialWait: time.Second,
		MaxWait:     2 * time.Second,
		Multiplier:  10.0,
	}}

	for attempt := 0; attempt < 5; attempt++ {
		wait := p.backoff(attempt, &ErrUnavailable{})
		// Cap plus 20% jitter headroom.
		require.LessOrEqual(t, wait, 2*time.Second+2*time.Second/5)
		require.GreaterOrEqual(t, wait, time.Duration(0))
	}
}
