package llm

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/2210030429cse-tech/learningplatform/internal/store"
)

// LoggingProvider is a decorator that records every model request as a store
// event and as a diagnostic log line.
type LoggingProvider struct {
	inner  Provider
	name   string
	events store.EventRepo
	log    *logrus.Logger
}

// WithLogging wraps a Provider with event logging. Either sink may be nil.
func WithLogging(p Provider, name string, events store.EventRepo, log *logrus.Logger) Provider {
	return &LoggingProvider{inner: p, name: name, events: events, log: log}
}

func (l *LoggingProvider) Chat(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Chat(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = resp.Text
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if l.log != nil {
		entry := l.log.WithFields(logrus.Fields{
			"purpose":    purpose,
			"model":      data.Model,
			"latency_ms": latencyMs,
			"in_tokens":  data.InputTokens,
			"out_tokens": data.OutputTokens,
		})
		if err != nil {
			entry.WithError(err).Warn("model request failed")
		} else {
			entry.Info("model request completed")
		}
	}

	// Record the event but never fail the request over logging.
	if l.events != nil {
		if logErr := l.events.AppendLLMEvent(ctx, data); logErr != nil && l.log != nil {
			l.log.WithError(logErr).Warn("failed to record model request event")
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the request for the
// event log.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString("[")
		b.WriteString(string(m.Role))
		b.WriteString("]\n")
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
