package app

import (
	"context"
	"fmt"
	"log"

	"github.com/vportella/feedbackiq/internal/config"
	"github.com/vportella/feedbackiq/internal/processor"
	"github.com/vportella/feedbackiq/internal/server"
	"github.com/vportella/feedbackiq/pkg/classify"
	"github.com/vportella/feedbackiq/pkg/llm"
	"github.com/vportella/feedbackiq/pkg/notify"
	"github.com/vportella/feedbackiq/pkg/sentiment"
	"github.com/vportella/feedbackiq/pkg/store"
	"github.com/vportella/feedbackiq/pkg/themes"
)

// App holds all application dependencies
type App struct {
	Config    *config.Config
	Store     *store.Store
	Generator llm.Generator
	Notifier  *notify.SlackNotifier
	Processor *processor.Processor
	Server    *server.Server
}

// New initializes a new application with all dependencies
func New() (*App, error) {
	// Load configuration
	cfg := config.LoadConfig()

	// Open the database and make sure the schema exists
	st, err := store.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := st.InitSchema(context.Background()); err != nil {
		log.Printf("WARNING: Failed to initialize schema: %v", err)
	}

	// Initialize the generative provider. A misconfigured provider
	// disables theme extraction but never blocks startup.
	var generator llm.Generator
	factory := llm.NewFactory(llm.Config{
		Provider:        cfg.LLMProvider,
		OllamaURL:       cfg.OllamaURL,
		OllamaModel:     cfg.OllamaModel,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		OpenAIModel:     cfg.OpenAIModel,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
		GeminiAPIKey:    cfg.GeminiAPIKey,
		GeminiModel:     cfg.GeminiModel,
		BedrockRegion:   cfg.BedrockRegion,
		BedrockModel:    cfg.BedrockModel,
	})
	generator, err = factory.CreateGenerator()
	if err != nil {
		log.Printf("WARNING: LLM provider unavailable, theme extraction disabled: %v", err)
		generator = nil
	}

	// Initialize the sentiment classifier. Same rule: misconfiguration
	// degrades to neutral scoring instead of failing startup.
	var classifier classify.Classifier
	switch cfg.SentimentProvider {
	case "huggingface":
		if cfg.HuggingFaceAPIKey == "" {
			log.Printf("WARNING: HUGGINGFACE_API_KEY not set, sentiment scoring disabled")
		} else {
			classifier = classify.NewHuggingFaceClassifier(cfg.HuggingFaceAPIKey, cfg.HuggingFaceModel)
		}
	case "llm":
		if generator == nil {
			log.Printf("WARNING: sentiment provider 'llm' needs a working LLM provider, sentiment scoring disabled")
		} else {
			classifier = classify.NewGeneratorClassifier(generator)
		}
	default:
		log.Printf("WARNING: unknown sentiment provider %q, sentiment scoring disabled", cfg.SentimentProvider)
	}

	notifier := notify.NewSlackNotifier(cfg.SlackWebhookURL)

	registry := themes.NewRegistry(st)
	proc := processor.New(
		st,
		sentiment.NewNormalizer(classifier),
		registry,
		themes.NewExtractor(generator),
		notifier,
	)

	srv := server.New(cfg.Port, proc, registry, st, notifier)

	return &App{
		Config:    cfg,
		Store:     st,
		Generator: generator,
		Notifier:  notifier,
		Processor: proc,
		Server:    srv,
	}, nil
}

// LogStartupInfo logs application startup information
func (a *App) LogStartupInfo() {
	log.Printf("Starting Feedback Intelligence API on port %s", a.Config.Port)
	log.Printf("Database driver: %s", a.Config.DatabaseDriver)

	if a.Generator != nil {
		log.Printf("LLM provider: %s", a.Generator.Name())
	} else {
		log.Printf("LLM provider: disabled")
	}

	if a.Notifier.IsConfigured() {
		log.Printf("Slack notifications: enabled")
	} else {
		log.Printf("Slack notifications: disabled")
	}

	if a.Config.AnalyzeSchedule != "" {
		log.Printf("Scheduled analysis: %s", a.Config.AnalyzeSchedule)
	} else {
		log.Printf("Scheduled analysis: disabled")
	}
}
