package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportella/feedbackiq/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := Open("sqlite3", dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	require.NoError(t, st.InitSchema(context.Background()))
	return st
}

func insertTestFeedback(t *testing.T, st *Store, text, source string, sentiment types.Sentiment, createdAt time.Time) *types.Feedback {
	t.Helper()

	f := &types.Feedback{
		ID:             uuid.New().String(),
		Text:           text,
		Source:         source,
		Category:       "other",
		Sentiment:      sentiment,
		SentimentScore: 0.5,
		UserTier:       "free",
		CompanySize:    "small",
		CreatedAt:      createdAt,
	}
	require.NoError(t, st.InsertFeedback(context.Background(), f))
	return f
}

func insertTestTheme(t *testing.T, st *Store, name string, score int, status types.ThemeStatus) *types.Theme {
	t.Helper()

	now := time.Now().UTC()
	theme := &types.Theme{
		ID:            uuid.New().String(),
		Name:          name,
		PriorityBand:  types.PriorityMedium,
		PriorityScore: score,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, st.InsertTheme(context.Background(), theme))
	return theme
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "dsn")
	assert.Error(t, err)

	_, err = Open("sqlite3", "")
	assert.Error(t, err)
}

func TestInsertAndListFeedback(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	insertTestFeedback(t, st, "old one", "discord", types.SentimentNegative, now.Add(-2*time.Hour))
	insertTestFeedback(t, st, "newer one", "discord", types.SentimentPositive, now.Add(-1*time.Hour))
	insertTestFeedback(t, st, "from support", "support", types.SentimentNegative, now)

	all, err := st.ListFeedback(ctx, types.FeedbackFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "from support", all[0].Text, "most recent first")
	assert.Equal(t, "old one", all[2].Text)

	discord, err := st.ListFeedback(ctx, types.FeedbackFilter{Source: "discord"})
	require.NoError(t, err)
	assert.Len(t, discord, 2)

	negative, err := st.ListFeedback(ctx, types.FeedbackFilter{Sentiment: "negative"})
	require.NoError(t, err)
	assert.Len(t, negative, 2)

	limited, err := st.ListFeedback(ctx, types.FeedbackFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "from support", limited[0].Text)
}

func TestListFeedbackByTheme(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	linked := insertTestFeedback(t, st, "linked", "discord", types.SentimentNeutral, now)
	insertTestFeedback(t, st, "unlinked", "discord", types.SentimentNeutral, now)
	theme := insertTestTheme(t, st, "Slow dashboard", 8, types.ThemeActive)

	require.NoError(t, st.LinkFeedback(ctx, linked.ID, theme.ID))

	got, err := st.ListFeedback(ctx, types.FeedbackFilter{ThemeID: theme.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, linked.ID, got[0].ID)
}

func TestListUnthemedExcludesLinked(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	linked := insertTestFeedback(t, st, "linked", "discord", types.SentimentNeutral, now.Add(-time.Minute))
	free := insertTestFeedback(t, st, "free", "discord", types.SentimentNeutral, now)
	theme := insertTestTheme(t, st, "Slow dashboard", 8, types.ThemeActive)
	require.NoError(t, st.LinkFeedback(ctx, linked.ID, theme.ID))

	unthemed, err := st.ListUnthemed(ctx, 50)
	require.NoError(t, err)
	require.Len(t, unthemed, 1)
	assert.Equal(t, free.ID, unthemed[0].ID)
}

func TestLinkFeedbackIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	f := insertTestFeedback(t, st, "text", "discord", types.SentimentNeutral, time.Now().UTC())
	theme := insertTestTheme(t, st, "Slow dashboard", 8, types.ThemeActive)

	require.NoError(t, st.LinkFeedback(ctx, f.ID, theme.ID))
	require.NoError(t, st.LinkFeedback(ctx, f.ID, theme.ID))

	got, err := st.ListFeedbackForTheme(ctx, theme.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGetThemeNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetTheme(context.Background(), "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListActiveThemeStats(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	high := insertTestTheme(t, st, "High", 15, types.ThemeActive)
	low := insertTestTheme(t, st, "Low", 3, types.ThemeActive)
	insertTestTheme(t, st, "Archived", 25, types.ThemeArchived)

	pos := insertTestFeedback(t, st, "great", "discord", types.SentimentPositive, now)
	neg := insertTestFeedback(t, st, "awful", "discord", types.SentimentNegative, now)
	neu := insertTestFeedback(t, st, "fine", "discord", types.SentimentNeutral, now)
	require.NoError(t, st.LinkFeedback(ctx, pos.ID, high.ID))
	require.NoError(t, st.LinkFeedback(ctx, neg.ID, high.ID))
	require.NoError(t, st.LinkFeedback(ctx, neu.ID, high.ID))

	stats, err := st.ListActiveThemeStats(ctx, 0)
	require.NoError(t, err)
	require.Len(t, stats, 2, "archived themes are excluded")

	assert.Equal(t, high.ID, stats[0].ID, "ordered by priority score")
	assert.Equal(t, 3, stats[0].FeedbackCount)
	assert.InDelta(t, 0.0, stats[0].AvgSentiment, 1e-9, "(+1 -1 +0)/3")

	assert.Equal(t, low.ID, stats[1].ID)
	assert.Equal(t, 0, stats[1].FeedbackCount)
	assert.Equal(t, 0.0, stats[1].AvgSentiment, "no feedback averages to 0, not NULL")
}

func TestListActiveThemeStatsAvgSentiment(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	theme := insertTestTheme(t, st, "Mostly negative", 8, types.ThemeActive)
	for i := 0; i < 3; i++ {
		f := insertTestFeedback(t, st, "bad", "support", types.SentimentNegative, now)
		require.NoError(t, st.LinkFeedback(ctx, f.ID, theme.ID))
	}
	f := insertTestFeedback(t, st, "good", "support", types.SentimentPositive, now)
	require.NoError(t, st.LinkFeedback(ctx, f.ID, theme.ID))

	stats, err := st.ListActiveThemeStats(ctx, 10)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.InDelta(t, -0.5, stats[0].AvgSentiment, 1e-9, "(-3+1)/4")
}

func TestStats(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	insertTestFeedback(t, st, "a", "discord", types.SentimentPositive, now)
	insertTestFeedback(t, st, "b", "discord", types.SentimentNegative, now)
	insertTestFeedback(t, st, "c", "support", types.SentimentNegative, now)
	insertTestTheme(t, st, "Active", 8, types.ThemeActive)
	insertTestTheme(t, st, "Archived", 8, types.ThemeArchived)

	stats, err := st.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalFeedback)
	assert.Equal(t, 1, stats.TotalThemes, "only active themes are counted")

	bySentiment := map[string]int{}
	for _, sc := range stats.SentimentDistribution {
		bySentiment[sc.Sentiment] = sc.Count
	}
	assert.Equal(t, map[string]int{"positive": 1, "negative": 2}, bySentiment)

	require.NotEmpty(t, stats.TopSources)
	assert.Equal(t, "discord", stats.TopSources[0].Source)
	assert.Equal(t, 2, stats.TopSources[0].Count)
}

func TestSeedDemoData(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	count, err := st.SeedDemoData(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	all, err := st.ListFeedback(ctx, types.FeedbackFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	for _, f := range all {
		assert.Equal(t, types.SentimentNeutral, f.Sentiment)
		assert.Equal(t, "complaint", f.Category)
	}
}

func TestRebind(t *testing.T) {
	sqlite := &Store{driver: "sqlite3"}
	assert.Equal(t, "SELECT * FROM t WHERE a = ? AND b = ?", sqlite.rebind("SELECT * FROM t WHERE a = ? AND b = ?"))

	pg := &Store{driver: "postgres"}
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b = $2", pg.rebind("SELECT * FROM t WHERE a = ? AND b = ?"))
	assert.Equal(t, "no placeholders", pg.rebind("no placeholders"))
}
