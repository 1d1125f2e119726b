package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vportella/feedbackiq/pkg/types"
)

type seedRow struct {
	text     string
	source   string
	userTier string
}

var seedRows = []seedRow{
	{
		text:     "The dashboard loading time is really slow, takes over 10 seconds to load my analytics",
		source:   "discord",
		userTier: "paid",
	},
	{
		text:     "Would love to see dark mode support, my eyes hurt during late night sessions",
		source:   "support",
		userTier: "enterprise",
	},
	{
		text:     "API rate limits are too restrictive for our use case, we need higher throughput",
		source:   "github",
		userTier: "paid",
	},
	{
		text:     "Love the new export feature! Works exactly as expected",
		source:   "community",
		userTier: "free",
	},
}

// SeedDemoData inserts a small fixed set of demo feedback rows and
// returns how many were inserted.
func (s *Store) SeedDemoData(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	for _, row := range seedRows {
		f := &types.Feedback{
			ID:             uuid.New().String(),
			Text:           row.text,
			Source:         row.source,
			Category:       "complaint",
			Sentiment:      types.SentimentNeutral,
			SentimentScore: 0.5,
			UserTier:       row.userTier,
			CompanySize:    "small",
			CreatedAt:      now,
		}
		if err := s.InsertFeedback(ctx, f); err != nil {
			return 0, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return len(seedRows), nil
}
