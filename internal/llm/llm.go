// Package llm provides the model-client abstraction for story generation and
// judging. It defines a provider-agnostic Client interface with a concrete
// OpenAI implementation, a retrying wrapper for transient failures, and a
// deterministic mock for testing.
package llm

import (
	"context"
	"errors"
	"os"
	"time"
)

var (
	// ErrModelUnavailable is returned once every retry attempt has failed.
	// It wraps the last underlying error for diagnostics.
	ErrModelUnavailable = errors.New("model unavailable after retries")

	// ErrInvalidConfig marks missing credentials or malformed requests.
	ErrInvalidConfig = errors.New("invalid LLM configuration")
)

// Message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged entry in a chat completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Client defines the interface for chat-completion calls. Implementations
// must be safe for sequential reuse across a session.
type Client interface {
	// Complete sends the messages and returns the model's response text.
	Complete(ctx context.Context, messages []Message, maxTokens int, temperature float64) (string, error)
}

// Config holds common configuration options for model providers.
type Config struct {
	// Model is the chat model identifier.
	Model string

	// APIKey authenticates with the provider; falls back to the
	// provider's environment variable when empty.
	APIKey string

	// Timeout bounds each individual request (0 = provider default).
	Timeout time.Duration
}

// DefaultConfig returns the default model configuration, honoring the
// STORY_MODEL environment override.
func DefaultConfig() Config {
	model := os.Getenv("STORY_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return Config{
		Model:   model,
		Timeout: 30 * time.Second,
	}
}
