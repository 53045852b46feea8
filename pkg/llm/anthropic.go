package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const anthropicEndpoint = "https://api.anthropic.com/v1/messages"

// AnthropicService implements ChatService using the Anthropic messages API
type AnthropicService struct {
	apiKey string
	model  string
}

// NewAnthropicService creates a new Anthropic service
func NewAnthropicService(apiKey, model string) *AnthropicService {
	if model == "" {
		model = "claude-3-sonnet-20240229"
	}
	return &AnthropicService{apiKey: apiKey, model: model}
}

func (a *AnthropicService) Provider() ProviderType {
	return ProviderAnthropic
}

// Chat implements ChatService
func (a *AnthropicService) Chat(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	payload := map[string]interface{}{
		"model":      a.model,
		"max_tokens": 1000,
		"messages": []map[string]string{
			{"role": "user", "content": userMessage},
		},
	}
	if systemPrompt != "" {
		payload["system"] = systemPrompt
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", anthropicEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(result.Content) == 0 {
		return "", fmt.Errorf("anthropic returned no content")
	}

	return result.Content[0].Text, nil
}
