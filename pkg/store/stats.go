package store

import (
	"context"
	"fmt"

	"github.com/vportella/feedbackiq/pkg/types"
)

// topSourcesLimit bounds the top-sources breakdown in stats.
const topSourcesLimit = 5

// Stats returns the aggregate counters for the stats endpoint.
func (s *Store) Stats(ctx context.Context) (*types.Stats, error) {
	stats := types.EmptyStats()

	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&stats.TotalFeedback); err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}

	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM themes WHERE status = 'active'`).Scan(&stats.TotalThemes); err != nil {
		return nil, fmt.Errorf("failed to count themes: %w", err)
	}

	rows, err := s.query(ctx, `SELECT sentiment, COUNT(*) AS count FROM feedback GROUP BY sentiment`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sentiment distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sc types.SentimentCount
		if err := rows.Scan(&sc.Sentiment, &sc.Count); err != nil {
			continue
		}
		stats.SentimentDistribution = append(stats.SentimentDistribution, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sentiment rows: %w", err)
	}

	srcRows, err := s.query(ctx, `SELECT source, COUNT(*) AS count FROM feedback GROUP BY source ORDER BY count DESC LIMIT ?`, topSourcesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top sources: %w", err)
	}
	defer srcRows.Close()

	for srcRows.Next() {
		var sc types.SourceCount
		if err := srcRows.Scan(&sc.Source, &sc.Count); err != nil {
			continue
		}
		stats.TopSources = append(stats.TopSources, sc)
	}
	if err := srcRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating source rows: %w", err)
	}

	return stats, nil
}
