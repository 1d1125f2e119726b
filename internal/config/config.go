package config

import "os"

// Config holds all application configuration
type Config struct {
	Port        string
	LLMProvider string // "ollama", "openai", "anthropic", "gemini", "bedrock"

	OllamaURL       string
	OllamaModel     string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	GeminiAPIKey    string
	GeminiModel     string
	BedrockRegion   string
	BedrockModel    string

	SentimentProvider string // "huggingface" or "llm"
	HuggingFaceAPIKey string
	HuggingFaceModel  string

	DatabaseDriver string // "sqlite3" or "postgres"
	DatabaseURL    string

	SlackWebhookURL string

	// Cron expression for scheduled theme analysis; empty disables it.
	AnalyzeSchedule string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		LLMProvider: getEnv("LLM_PROVIDER", "ollama"),

		OllamaURL:       getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:     getEnv("OLLAMA_MODEL", "llama3"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4-turbo-preview"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-pro"),
		BedrockRegion:   getEnv("BEDROCK_REGION", "us-east-1"),
		BedrockModel:    getEnv("BEDROCK_MODEL", "anthropic.claude-3-5-sonnet-20241022-v2:0"),

		SentimentProvider: getEnv("SENTIMENT_PROVIDER", "huggingface"),
		HuggingFaceAPIKey: getEnv("HUGGINGFACE_API_KEY", ""),
		HuggingFaceModel:  getEnv("HUGGINGFACE_MODEL", ""),

		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite3"),
		DatabaseURL:    getEnv("DATABASE_URL", "feedback.db"),

		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),

		AnalyzeSchedule: getEnv("ANALYZE_SCHEDULE", ""),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
