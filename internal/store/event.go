package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// LLMEventData captures the data for a single model request event.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results, newest first (0 = default 50)
	Purpose string // filter by purpose when non-empty
}

// EventRepo provides append and query access to model request events.
type EventRepo interface {
	// AppendLLMEvent records a model API call.
	AppendLLMEvent(ctx context.Context, data LLMEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by id.
	GetLLMEvent(ctx context.Context, id uint) (*LLMEvent, error)
}

type eventRepo struct {
	db *gorm.DB
}

func (r *eventRepo) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	event := LLMEvent{
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		RequestBody:  data.RequestBody,
		ResponseBody: data.ResponseBody,
	}
	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("append LLM event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	q := r.db.WithContext(ctx).Order("id DESC").Limit(limit)
	if opts.Purpose != "" {
		q = q.Where("purpose = ?", opts.Purpose)
	}

	var events []LLMEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id uint) (*LLMEvent, error) {
	var event LLMEvent
	err := r.db.WithContext(ctx).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load LLM event %d: %w", id, err)
	}
	return &event, nil
}
