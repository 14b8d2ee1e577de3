package llm

import "context"

// MockResult is one scripted reply for MockClient.
type MockResult struct {
	Text string
	Err  error
}

// MockCall records the arguments of one Complete invocation.
type MockCall struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// MockClient is a deterministic Client implementation for testing. If Script
// is set, replies are consumed in order and the last entry repeats once the
// script is exhausted; otherwise the fixed Response/Err pair is returned.
type MockClient struct {
	Response string
	Err      error
	Script   []MockResult

	// Calls records every invocation in order.
	Calls []MockCall
}

// NewMockClient creates a mock that always returns the given response.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

// NewMockClientWithError creates a mock that always returns an error.
func NewMockClientWithError(err error) *MockClient {
	return &MockClient{Err: err}
}

// Complete returns the next scripted reply or the fixed response.
func (m *MockClient) Complete(ctx context.Context, messages []Message, maxTokens int, temperature float64) (string, error) {
	m.Calls = append(m.Calls, MockCall{
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})

	if len(m.Script) > 0 {
		idx := len(m.Calls) - 1
		if idx >= len(m.Script) {
			idx = len(m.Script) - 1
		}
		return m.Script[idx].Text, m.Script[idx].Err
	}
	return m.Response, m.Err
}
