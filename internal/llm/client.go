// Package llm provides interfaces and implementations for LLM-assisted day planning.
package llm

import (
	"context"
	"strings"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the interface for LLM providers.
type Client interface {
	// Chat sends messages to the LLM and returns the response.
	Chat(ctx context.Context, messages []Message) (string, error)

	// ChatJSON sends messages and parses the response as JSON into the provided type.
	ChatJSON(ctx context.Context, messages []Message, result any) error
}

// extractJSON pulls a JSON payload out of a model response that may wrap it
// in a markdown code fence or surrounding prose.
func extractJSON(s string) string {
	if body, ok := cutFence(s, "```json"); ok {
		return body
	}
	if body, ok := cutFence(s, "```"); ok {
		return body
	}

	// Fall back to the outermost braces.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start != -1 && end > start {
		return s[start : end+1]
	}
	return strings.TrimSpace(s)
}

func cutFence(s, fence string) (string, bool) {
	idx := strings.Index(s, fence)
	if idx == -1 {
		return "", false
	}
	body := s[idx+len(fence):]
	end := strings.Index(body, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(body[:end]), true
}
