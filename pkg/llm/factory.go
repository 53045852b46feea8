package llm

// Config holds LLM provider configuration
type Config struct {
	OpenAIKey      string
	OpenAIModel    string
	AnthropicKey   string
	AnthropicModel string
}

// NewChatService creates a ChatService from the config. OpenAI wins when
// both keys are set; ErrNotConfigured when neither is.
func NewChatService(cfg Config) (ChatService, error) {
	if cfg.OpenAIKey != "" {
		return NewOpenAIService(cfg.OpenAIKey, cfg.OpenAIModel), nil
	}
	if cfg.AnthropicKey != "" {
		return NewAnthropicService(cfg.AnthropicKey, cfg.AnthropicModel), nil
	}
	return nil, ErrNotConfigured
}
