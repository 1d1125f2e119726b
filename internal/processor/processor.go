package processor

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/vportella/feedbackiq/pkg/notify"
	"github.com/vportella/feedbackiq/pkg/sentiment"
	"github.com/vportella/feedbackiq/pkg/store"
	"github.com/vportella/feedbackiq/pkg/themes"
	"github.com/vportella/feedbackiq/pkg/types"
)

const (
	classifyTimeout = 15 * time.Second
	generateTimeout = 60 * time.Second
)

// Processor runs the two feedback pipelines: scoring and storing
// incoming feedback, and extracting themes from unthemed batches.
type Processor struct {
	store      *store.Store
	normalizer *sentiment.Normalizer
	registry   *themes.Registry
	extractor  *themes.Extractor
	notifier   *notify.SlackNotifier
}

// New creates a processor wired to its collaborators.
func New(st *store.Store, normalizer *sentiment.Normalizer, registry *themes.Registry, extractor *themes.Extractor, notifier *notify.SlackNotifier) *Processor {
	return &Processor{
		store:      st,
		normalizer: normalizer,
		registry:   registry,
		extractor:  extractor,
		notifier:   notifier,
	}
}

// IngestRequest is the submitted feedback payload.
type IngestRequest struct {
	Text        string `json:"text"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	UserTier    string `json:"user_tier"`
	CompanySize string `json:"company_size"`
}

// Ingest validates, scores and stores one feedback item. Validation
// happens before any side effect; a rejected request writes nothing.
func (p *Processor) Ingest(ctx context.Context, req IngestRequest) (*types.Feedback, error) {
	if req.Text == "" || req.Source == "" {
		return nil, types.NewValidationError("text and source required")
	}

	scoreCtx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()
	label, score := p.normalizer.Normalize(scoreCtx, req.Text)

	category := req.Category
	if category == "" {
		category = "other"
	}
	userTier := req.UserTier
	if userTier == "" {
		userTier = "free"
	}
	companySize := req.CompanySize
	if companySize == "" {
		companySize = "small"
	}

	feedback := &types.Feedback{
		ID:             uuid.New().String(),
		Text:           req.Text,
		Source:         req.Source,
		Category:       category,
		Sentiment:      label,
		SentimentScore: score,
		UserTier:       userTier,
		CompanySize:    companySize,
		CreatedAt:      time.Now().UTC(),
	}

	if err := p.store.InsertFeedback(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// AnalyzeResult reports what an analysis run produced.
type AnalyzeResult struct {
	Themes           []types.ThemeRef `json:"themes"`
	AnalyzedFeedback int              `json:"analyzedFeedback"`
}

// AnalyzeThemes gathers the unthemed feedback backlog, asks the model
// for themes and registers the proposals. With no unthemed feedback it
// returns an empty result without touching the model.
func (p *Processor) AnalyzeThemes(ctx context.Context) (*AnalyzeResult, error) {
	batch, err := p.store.ListUnthemed(ctx, themes.MaxBatchSize)
	if err != nil {
		return nil, err
	}

	result := &AnalyzeResult{Themes: []types.ThemeRef{}}
	if len(batch) == 0 {
		return result, nil
	}
	result.AnalyzedFeedback = len(batch)

	texts := make([]string, len(batch))
	for i, f := range batch {
		texts[i] = f.Text
	}

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()
	proposals := p.extractor.Extract(genCtx, texts)
	if len(proposals) == 0 {
		return result, nil
	}

	refs, err := p.registry.CreateFromProposals(ctx, proposals)
	if err != nil {
		return nil, err
	}
	result.Themes = refs

	if p.notifier != nil && len(refs) > 0 {
		if err := p.notifier.NotifyNewThemes(refs, result.AnalyzedFeedback); err != nil {
			log.Printf("Warning: failed to send Slack notification: %v", err)
		}
	}

	return result, nil
}
