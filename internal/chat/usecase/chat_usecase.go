package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"officeflow-backend/pkg/llm"
	"officeflow-backend/pkg/semantic"
)

const (
	generalSystemPrompt = "You are an assistant in an office automation application who helps users with their questions."
	projectSystemPrompt = "You are an assistant who helps with information from a project."

	noContextPlaceholder = "No relevant context was found for this query."
)

// ChatResult is the envelope returned by project chat
type ChatResult struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Response      string `json:"response,omitempty"`
	ContextChunks int    `json:"context_chunks"`
	Timestamp     string `json:"timestamp"`
}

// ChatUsecase answers chat messages, optionally grounded in project context
type ChatUsecase interface {
	GeneralChat(ctx context.Context, message string) (string, error)
	ChatWithProject(ctx context.Context, projectID uint, message string) ChatResult
}

type chatUsecase struct {
	chat             llm.ChatService
	semantic         *semantic.Client
	maxContextChunks int
}

func NewChatUsecase(chat llm.ChatService, semanticClient *semantic.Client, maxContextChunks int) ChatUsecase {
	if maxContextChunks <= 0 {
		maxContextChunks = 10
	}
	return &chatUsecase{
		chat:             chat,
		semantic:         semanticClient,
		maxContextChunks: maxContextChunks,
	}
}

// GeneralChat answers a message without any project context
func (u *chatUsecase) GeneralChat(ctx context.Context, message string) (string, error) {
	if u.chat == nil {
		return "", llm.ErrNotConfigured
	}

	prompt := fmt.Sprintf(`Answer the user's question as well as you can.

QUESTION: %s

ANSWER:`, message)

	return u.chat.Chat(ctx, generalSystemPrompt, prompt)
}

// ChatWithProject answers a message using semantic context for the project.
// It always returns an envelope; failures become error envelopes.
func (u *chatUsecase) ChatWithProject(ctx context.Context, projectID uint, message string) ChatResult {
	if u.chat == nil {
		return errorResult("LLM is not configured. Set an API key in the environment.")
	}

	contextText := noContextPlaceholder
	chunkCount := 0
	if u.semantic != nil {
		result := u.semantic.ProjectContext(ctx, projectID, message, u.maxContextChunks)
		if len(result.Chunks) > 0 {
			contextText = formatChunks(result.Chunks)
			chunkCount = len(result.Chunks)
		}
	}

	prompt := fmt.Sprintf(`Your task is to give the best possible answer using the following context:

===== PROJECT CONTEXT =====
%s
===================

QUESTION: %s

ANSWER:`, contextText, message)

	response, err := u.chat.Chat(ctx, projectSystemPrompt, prompt)
	if err != nil {
		log.Printf("[LLM] chat generation failed: %v", err)
		return errorResult(fmt.Sprintf("Failed to generate a response: %v", err))
	}

	return ChatResult{
		Status:        "success",
		Message:       "Response generated successfully",
		Response:      response,
		ContextChunks: chunkCount,
		Timestamp:     time.Now().Format(time.RFC3339),
	}
}

// formatChunks renders context chunks as delimited fragments with their
// topic annotations.
func formatChunks(chunks []semantic.Chunk) string {
	parts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		var meta []string
		if chunk.Annotation != nil {
			if chunk.Annotation.MainTopic != "" {
				meta = append(meta, "Topic: "+chunk.Annotation.MainTopic)
			}
			if len(chunk.Annotation.Categories) > 0 {
				meta = append(meta, "Categories: "+strings.Join(chunk.Annotation.Categories, ", "))
			}
		}

		part := fmt.Sprintf("FRAGMENT %d:\n", i+1)
		if len(meta) > 0 {
			part += "[" + strings.Join(meta, ", ") + "]\n"
		}
		part += chunk.Text + "\n"
		parts = append(parts, part)
	}
	return strings.Join(parts, "\n\n")
}

func errorResult(message string) ChatResult {
	return ChatResult{
		Status:    "error",
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
