package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/vportella/feedbackiq/pkg/types"
)

// DefaultThemeLimit caps ranked theme listings when no limit is given.
const DefaultThemeLimit = 50

// InsertTheme stores a new theme row with zeroed aggregates.
func (s *Store) InsertTheme(ctx context.Context, t *types.Theme) error {
	query := `
		INSERT INTO themes (id, name, description, priority_band, priority_score, status, volume, positive_count, neutral_count, negative_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.exec(ctx, query,
		t.ID,
		t.Name,
		t.Description,
		string(t.PriorityBand),
		t.PriorityScore,
		string(t.Status),
		t.Volume,
		t.PositiveCount,
		t.NeutralCount,
		t.NegativeCount,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert theme: %w", err)
	}
	return nil
}

// GetTheme returns the theme with the given id regardless of status, or
// types.ErrNotFound.
func (s *Store) GetTheme(ctx context.Context, id string) (*types.Theme, error) {
	query := `
		SELECT id, name, description, priority_band, priority_score, status, volume, positive_count, neutral_count, negative_count, created_at, updated_at
		FROM themes WHERE id = ?
	`

	var t types.Theme
	var band, status string
	err := s.queryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&band,
		&t.PriorityScore,
		&status,
		&t.Volume,
		&t.PositiveCount,
		&t.NeutralCount,
		&t.NegativeCount,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query theme: %w", err)
	}

	t.PriorityBand = types.PriorityBand(band)
	t.Status = types.ThemeStatus(status)
	return &t, nil
}

// ListActiveThemeStats returns active themes with join-time aggregates,
// ordered by priority score descending. Archived themes are excluded.
// avg_sentiment is coalesced to 0 for themes with no linked feedback.
func (s *Store) ListActiveThemeStats(ctx context.Context, limit int) ([]types.ThemeStats, error) {
	if limit <= 0 {
		limit = DefaultThemeLimit
	}

	query := `
		SELECT
			t.id,
			t.name,
			t.description,
			t.priority_band,
			t.priority_score,
			t.status,
			t.volume,
			t.positive_count,
			t.neutral_count,
			t.negative_count,
			t.created_at,
			t.updated_at,
			COUNT(ft.feedback_id) AS feedback_count,
			COALESCE(
				AVG(CASE
					WHEN f.sentiment = 'negative' THEN -1.0
					WHEN f.sentiment = 'positive' THEN 1.0
					ELSE 0.0
				END),
				0
			) AS avg_sentiment
		FROM themes t
		LEFT JOIN feedback_themes ft ON t.id = ft.theme_id
		LEFT JOIN feedback f ON ft.feedback_id = f.id
		WHERE t.status = 'active'
		GROUP BY t.id
		ORDER BY t.priority_score DESC
		LIMIT ?
	`

	rows, err := s.query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query theme stats: %w", err)
	}
	defer rows.Close()

	var stats []types.ThemeStats
	for rows.Next() {
		var ts types.ThemeStats
		var band, status string

		err := rows.Scan(
			&ts.ID,
			&ts.Name,
			&ts.Description,
			&band,
			&ts.PriorityScore,
			&status,
			&ts.Volume,
			&ts.PositiveCount,
			&ts.NeutralCount,
			&ts.NegativeCount,
			&ts.CreatedAt,
			&ts.UpdatedAt,
			&ts.FeedbackCount,
			&ts.AvgSentiment,
		)
		if err != nil {
			log.Printf("Warning: failed to scan theme row: %v", err)
			continue
		}

		ts.PriorityBand = types.PriorityBand(band)
		ts.Status = types.ThemeStatus(status)
		stats = append(stats, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating theme rows: %w", err)
	}
	return stats, nil
}

// LinkFeedback records a feedback-theme assignment. Linking the same
// pair twice is a no-op.
func (s *Store) LinkFeedback(ctx context.Context, feedbackID, themeID string) error {
	query := `
		INSERT INTO feedback_themes (feedback_id, theme_id)
		VALUES (?, ?)
		ON CONFLICT (feedback_id, theme_id) DO NOTHING
	`

	if _, err := s.exec(ctx, query, feedbackID, themeID); err != nil {
		return fmt.Errorf("failed to link feedback to theme: %w", err)
	}
	return nil
}
