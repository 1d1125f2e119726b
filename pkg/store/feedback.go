package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/vportella/feedbackiq/pkg/types"
)

// DefaultFeedbackLimit caps feedback listings when no limit is given.
const DefaultFeedbackLimit = 100

// InsertFeedback stores a new feedback row. Rows are never updated.
func (s *Store) InsertFeedback(ctx context.Context, f *types.Feedback) error {
	query := `
		INSERT INTO feedback (id, text, source, category, sentiment, sentiment_score, user_tier, company_size, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.exec(ctx, query,
		f.ID,
		f.Text,
		f.Source,
		f.Category,
		string(f.Sentiment),
		f.SentimentScore,
		f.UserTier,
		f.CompanySize,
		f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

// ListFeedback returns feedback rows matching the filter, most recent
// first.
func (s *Store) ListFeedback(ctx context.Context, filter types.FeedbackFilter) ([]types.Feedback, error) {
	query := `SELECT id, text, source, category, sentiment, sentiment_score, user_tier, company_size, created_at FROM feedback WHERE 1=1`
	var args []interface{}

	if filter.Source != "" {
		query += ` AND source = ?`
		args = append(args, filter.Source)
	}
	if filter.Sentiment != "" {
		query += ` AND sentiment = ?`
		args = append(args, filter.Sentiment)
	}
	if filter.UserTier != "" {
		query += ` AND user_tier = ?`
		args = append(args, filter.UserTier)
	}
	if filter.ThemeID != "" {
		query += ` AND id IN (SELECT feedback_id FROM feedback_themes WHERE theme_id = ?)`
		args = append(args, filter.ThemeID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultFeedbackLimit
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

// ListUnthemed returns the most recent feedback rows that have no theme
// assignment, up to limit.
func (s *Store) ListUnthemed(ctx context.Context, limit int) ([]types.Feedback, error) {
	query := `
		SELECT f.id, f.text, f.source, f.category, f.sentiment, f.sentiment_score, f.user_tier, f.company_size, f.created_at
		FROM feedback f
		LEFT JOIN feedback_themes ft ON f.id = ft.feedback_id
		WHERE ft.theme_id IS NULL
		ORDER BY f.created_at DESC
		LIMIT ?
	`

	rows, err := s.query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unthemed feedback: %w", err)
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

// ListFeedbackForTheme returns the feedback linked to a theme, most
// recent first.
func (s *Store) ListFeedbackForTheme(ctx context.Context, themeID string) ([]types.Feedback, error) {
	query := `
		SELECT f.id, f.text, f.source, f.category, f.sentiment, f.sentiment_score, f.user_tier, f.company_size, f.created_at
		FROM feedback f
		JOIN feedback_themes ft ON f.id = ft.feedback_id
		WHERE ft.theme_id = ?
		ORDER BY f.created_at DESC
	`

	rows, err := s.query(ctx, query, themeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query theme feedback: %w", err)
	}
	defer rows.Close()

	return scanFeedbackRows(rows)
}

func scanFeedbackRows(rows *sql.Rows) ([]types.Feedback, error) {
	var items []types.Feedback
	for rows.Next() {
		var f types.Feedback
		var sentiment string

		err := rows.Scan(
			&f.ID,
			&f.Text,
			&f.Source,
			&f.Category,
			&sentiment,
			&f.SentimentScore,
			&f.UserTier,
			&f.CompanySize,
			&f.CreatedAt,
		)
		if err != nil {
			log.Printf("Warning: failed to scan feedback row: %v", err)
			continue
		}

		f.Sentiment = types.Sentiment(sentiment)
		items = append(items, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}
	return items, nil
}
