package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "raw json object",
			input:    `{"blocks": []}`,
			expected: `{"blocks": []}`,
		},
		{
			name:     "json with leading text",
			input:    `Here is your plan: {"blocks": [{"title": "Gym"}]}`,
			expected: `{"blocks": [{"title": "Gym"}]}`,
		},
		{
			name:     "fenced json block",
			input:    "Sure!\n```json\n{\"blocks\": []}\n```\nLet me know.",
			expected: `{"blocks": []}`,
		},
		{
			name:     "plain fence",
			input:    "```\n{\"blocks\": [1]}\n```",
			expected: `{"blocks": [1]}`,
		},
		{
			name:     "no json at all",
			input:    "  nothing here  ",
			expected: "nothing here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON(tt.input)
			if got != tt.expected {
				t.Errorf("extractJSON() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewClient_Ollama(t *testing.T) {
	client, err := NewClient("ollama", "llama3", "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok := client.(*OllamaClient); !ok {
		t.Fatalf("expected OllamaClient, got %T", client)
	}
}

func TestNewClient_OpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	client, err := NewClient("openai", "gpt-4o", "")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, ok := client.(*OpenAIClient); !ok {
		t.Fatalf("expected OpenAIClient, got %T", client)
	}
}

func TestNewClient_OpenAIMissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewClient("openai", "gpt-4o", ""); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	if _, err := NewClient("unknown", "model", ""); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestNewOllamaClient_RequiresModel(t *testing.T) {
	if _, err := NewOllamaClient("", ""); err == nil {
		t.Fatal("expected error for empty model")
	}
}
