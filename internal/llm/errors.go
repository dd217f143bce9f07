package llm

import (
	"fmt"
	"time"
)

// ErrTransport indicates an HTTP-level failure talking to the external model.
// The response body, when available, is carried as diagnostic text.
type ErrTransport struct {
	Status int
	Body   string
	Err    error
}

func (e *ErrTransport) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("chat completion failed (HTTP %d): %s", e.Status, e.Body)
	}
	return fmt.Sprintf("chat completion failed: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrUnavailable indicates the provider is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider answered but produced no usable
// reply text (no choices, or an empty content field).
type ErrEmptyResponse struct{}

func (e *ErrEmptyResponse) Error() string {
	return "empty response from model"
}
