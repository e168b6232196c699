package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrMissingAPIKey is returned when no OpenAI API key is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// OpenAIClient talks to the OpenAI API or any OpenAI-compatible endpoint.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a client for OpenAI or an OpenAI-compatible server.
// baseURL may be empty for the official API.
func NewOpenAIClient(model, baseURL string) (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" && baseURL == "" {
		return nil, ErrMissingAPIKey
	}

	opts := []option.RequestOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Chat sends messages and returns the raw response text.
func (c *OpenAIClient) Chat(ctx context.Context, messages []Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: toOpenAIMessages(messages),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// ChatJSON sends messages and parses the response as JSON.
func (c *OpenAIClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	raw, err := c.Chat(ctx, messages)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), result); err != nil {
		return fmt.Errorf("parsing JSON response: %w", err)
	}
	return nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, openai.SystemMessage(m.Content))
		case "assistant":
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
