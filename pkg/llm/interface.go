package llm

import (
	"context"
	"errors"
)

// ProviderType identifies which LLM backend answers chat requests
type ProviderType string

const (
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
)

// ErrNotConfigured is returned by the factory when no provider has an API key
var ErrNotConfigured = errors.New("no LLM provider configured")

// ChatService is the interface all LLM providers implement
type ChatService interface {
	// Chat sends a user message with an optional system prompt and
	// returns the model's reply as plain text
	Chat(ctx context.Context, systemPrompt, userMessage string) (string, error)

	// Provider returns the provider type for logging
	Provider() ProviderType
}
