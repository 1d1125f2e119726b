package llm

import "context"

// Generator is the interface for generative-text providers (Ollama,
// OpenAI, Anthropic, Gemini, AWS Bedrock). Implementations return the
// raw completion text; callers own prompt construction and parsing.
type Generator interface {
	// Generate returns the completion for a single prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (for logging)
	Name() string
}

// Config holds common configuration for generative providers
type Config struct {
	Provider string // "ollama", "openai", "anthropic", "gemini", "bedrock"

	// Ollama-specific
	OllamaURL   string
	OllamaModel string

	// OpenAI-specific
	OpenAIAPIKey string
	OpenAIModel  string // e.g., "gpt-4-turbo-preview", "gpt-4o-mini"

	// Anthropic-specific
	AnthropicAPIKey string
	AnthropicModel  string // e.g., "claude-3-5-sonnet-20241022"

	// Gemini-specific
	GeminiAPIKey string
	GeminiModel  string // e.g., "gemini-1.5-pro"

	// AWS Bedrock-specific
	BedrockRegion string // e.g., "us-east-1", "us-west-2"
	BedrockModel  string // e.g., "anthropic.claude-3-5-sonnet-20241022-v2:0"
}

// maxCompletionTokens caps every provider call; theme proposals are
// small JSON payloads and never need more.
const maxCompletionTokens = 1024
