package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/nightlight-labs/nightlight/internal/eventlog"
)

const (
	// backoffCap bounds the exponential backoff between attempts.
	backoffCap = 5 * time.Second

	// previewLimit truncates logged responses, never returned values.
	previewLimit = 200
)

// CompletionEvent is logged for every successful model call.
type CompletionEvent struct {
	Type            string    `json:"type"`
	Attempt         int       `json:"attempt"`
	Messages        []Message `json:"messages"`
	ResponsePreview string    `json:"response_preview"`
}

// ErrorEvent is logged for every failed model call.
type ErrorEvent struct {
	Type    string `json:"type"`
	Attempt int    `json:"attempt"`
	Error   string `json:"error"`
}

// Resilient wraps a Client with bounded retry and capped exponential backoff.
// Every attempt, success or failure, is recorded to the event sink; the sink
// contract guarantees those records can never fail the call.
type Resilient struct {
	inner   Client
	retries int
	events  eventlog.Sink
	sleep   func(time.Duration)
}

// NewResilient builds a retrying wrapper around inner. retries is floored at
// 1; a nil sink discards events.
func NewResilient(inner Client, retries int, events eventlog.Sink) *Resilient {
	if retries < 1 {
		retries = 1
	}
	if events == nil {
		events = eventlog.Nop{}
	}
	return &Resilient{
		inner:   inner,
		retries: retries,
		events:  events,
		sleep:   time.Sleep,
	}
}

// Complete attempts the call up to the configured retry count, treating every
// inner error as transient. It sleeps min(2^(attempt-1), 5) seconds between
// attempts and returns ErrModelUnavailable once all attempts are exhausted.
func (r *Resilient) Complete(ctx context.Context, messages []Message, maxTokens int, temperature float64) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.retries; attempt++ {
		text, err := r.inner.Complete(ctx, messages, maxTokens, temperature)
		if err == nil {
			r.events.Record(CompletionEvent{
				Type:            "chat_completion",
				Attempt:         attempt,
				Messages:        messages,
				ResponsePreview: truncate(text, previewLimit),
			})
			return text, nil
		}
		lastErr = err
		r.events.Record(ErrorEvent{
			Type:    "chat_error",
			Attempt: attempt,
			Error:   err.Error(),
		})
		if attempt < r.retries {
			r.sleep(backoff(attempt))
		}
	}
	return "", fmt.Errorf("%w: %w", ErrModelUnavailable, lastErr)
}

func backoff(attempt int) time.Duration {
	d := time.Duration(1<<uint(attempt-1)) * time.Second
	if d > backoffCap {
		d = backoffCap
	}
	return d
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
