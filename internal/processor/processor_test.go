package processor

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportella/feedbackiq/pkg/classify"
	"github.com/vportella/feedbackiq/pkg/sentiment"
	"github.com/vportella/feedbackiq/pkg/store"
	"github.com/vportella/feedbackiq/pkg/themes"
	"github.com/vportella/feedbackiq/pkg/types"
)

type fakeClassifier struct {
	result *classify.Result
	err    error
}

func (c *fakeClassifier) Classify(ctx context.Context, text string) (*classify.Result, error) {
	return c.result, c.err
}

func (c *fakeClassifier) Name() string { return "fake" }

type fakeGenerator struct {
	response string
	err      error
	calls    int
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.response, g.err
}

func (g *fakeGenerator) Name() string { return "fake" }

func newTestProcessor(t *testing.T, classifier classify.Classifier, gen *fakeGenerator) (*Processor, *store.Store) {
	t.Helper()

	st, err := store.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.InitSchema(context.Background()))

	registry := themes.NewRegistry(st)
	var extractor *themes.Extractor
	if gen != nil {
		extractor = themes.NewExtractor(gen)
	} else {
		extractor = themes.NewExtractor(nil)
	}

	proc := New(st, sentiment.NewNormalizer(classifier), registry, extractor, nil)
	return proc, st
}

func TestIngestStoresScoredFeedback(t *testing.T) {
	proc, st := newTestProcessor(t, &fakeClassifier{result: &classify.Result{Label: "NEGATIVE", Score: 0.91}}, nil)
	ctx := context.Background()

	feedback, err := proc.Ingest(ctx, IngestRequest{
		Text:     "Dashboard takes forever to load",
		Source:   "discord",
		Category: "complaint",
		UserTier: "paid",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, feedback.ID)
	assert.Equal(t, types.SentimentNegative, feedback.Sentiment)
	assert.Equal(t, 0.91, feedback.SentimentScore)
	assert.Equal(t, "complaint", feedback.Category)
	assert.Equal(t, "paid", feedback.UserTier)
	assert.Equal(t, "small", feedback.CompanySize, "defaulted")
	assert.False(t, feedback.CreatedAt.IsZero())

	stored, err := st.ListFeedback(ctx, types.FeedbackFilter{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, feedback.ID, stored[0].ID)
}

func TestIngestDefaults(t *testing.T) {
	proc, _ := newTestProcessor(t, nil, nil)

	feedback, err := proc.Ingest(context.Background(), IngestRequest{Text: "hi", Source: "support"})
	require.NoError(t, err)
	assert.Equal(t, "other", feedback.Category)
	assert.Equal(t, "free", feedback.UserTier)
	assert.Equal(t, "small", feedback.CompanySize)
	assert.Equal(t, types.SentimentNeutral, feedback.Sentiment, "no classifier configured")
	assert.Equal(t, sentiment.FallbackScore, feedback.SentimentScore)
}

func TestIngestValidationWritesNothing(t *testing.T) {
	proc, st := newTestProcessor(t, nil, nil)
	ctx := context.Background()

	for _, req := range []IngestRequest{
		{},
		{Text: "no source"},
		{Source: "no text"},
	} {
		_, err := proc.Ingest(ctx, req)
		var verr *types.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "text and source required", verr.Message)
	}

	stored, err := st.ListFeedback(ctx, types.FeedbackFilter{})
	require.NoError(t, err)
	assert.Empty(t, stored, "rejected requests leave no rows behind")
}

func TestIngestSurvivesClassifierFailure(t *testing.T) {
	proc, _ := newTestProcessor(t, &fakeClassifier{err: errors.New("classifier down")}, nil)

	feedback, err := proc.Ingest(context.Background(), IngestRequest{Text: "hi", Source: "discord"})
	require.NoError(t, err)
	assert.Equal(t, types.SentimentNeutral, feedback.Sentiment)
	assert.Equal(t, sentiment.FallbackScore, feedback.SentimentScore)
}

func TestAnalyzeThemesEmptyBacklog(t *testing.T) {
	gen := &fakeGenerator{response: `[{"name": "never used"}]`}
	proc, _ := newTestProcessor(t, nil, gen)

	result, err := proc.AnalyzeThemes(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.AnalyzedFeedback)
	assert.NotNil(t, result.Themes)
	assert.Empty(t, result.Themes)
	assert.Zero(t, gen.calls, "empty backlog never reaches the model")
}

func TestAnalyzeThemesCreatesThemes(t *testing.T) {
	gen := &fakeGenerator{response: `[{"name": "Dashboard performance", "description": "slow loads"}]`}
	proc, st := newTestProcessor(t, nil, gen)
	ctx := context.Background()

	_, err := proc.Ingest(ctx, IngestRequest{Text: "dashboard is slow", Source: "discord"})
	require.NoError(t, err)
	_, err = proc.Ingest(ctx, IngestRequest{Text: "loading takes ages", Source: "support"})
	require.NoError(t, err)

	result, err := proc.AnalyzeThemes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.AnalyzedFeedback)
	require.Len(t, result.Themes, 1)
	assert.Equal(t, "Dashboard performance", result.Themes[0].Name)

	theme, err := st.GetTheme(ctx, result.Themes[0].ID)
	require.NoError(t, err)
	assert.Equal(t, types.ThemeActive, theme.Status)

	// analysis does not auto-link; the backlog stays unthemed
	unthemed, err := st.ListUnthemed(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, unthemed, 2)
}

func TestAnalyzeThemesModelFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model unavailable")}
	proc, _ := newTestProcessor(t, nil, gen)
	ctx := context.Background()

	_, err := proc.Ingest(ctx, IngestRequest{Text: "anything", Source: "discord"})
	require.NoError(t, err)

	result, err := proc.AnalyzeThemes(ctx)
	require.NoError(t, err, "model failure degrades to an empty run")
	assert.Equal(t, 1, result.AnalyzedFeedback)
	assert.Empty(t, result.Themes)
}
