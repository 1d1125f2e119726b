package store

import (
	"context"
	"fmt"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS feedback (
	id              TEXT PRIMARY KEY,
	text            TEXT NOT NULL,
	source          TEXT NOT NULL,
	category        TEXT NOT NULL DEFAULT 'other',
	sentiment       TEXT NOT NULL DEFAULT 'neutral',
	sentiment_score REAL NOT NULL DEFAULT 0.5,
	user_tier       TEXT NOT NULL DEFAULT 'free',
	company_size    TEXT NOT NULL DEFAULT 'small',
	created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at);
CREATE INDEX IF NOT EXISTS idx_feedback_source ON feedback(source);

CREATE TABLE IF NOT EXISTS themes (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	priority_band  TEXT NOT NULL DEFAULT 'medium',
	priority_score INTEGER NOT NULL DEFAULT 8,
	status         TEXT NOT NULL DEFAULT 'active',
	volume         INTEGER NOT NULL DEFAULT 0,
	positive_count INTEGER NOT NULL DEFAULT 0,
	neutral_count  INTEGER NOT NULL DEFAULT 0,
	negative_count INTEGER NOT NULL DEFAULT 0,
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_themes_status ON themes(status);

CREATE TABLE IF NOT EXISTS feedback_themes (
	feedback_id TEXT NOT NULL,
	theme_id    TEXT NOT NULL,
	PRIMARY KEY (feedback_id, theme_id)
);
CREATE INDEX IF NOT EXISTS idx_feedback_themes_theme ON feedback_themes(theme_id);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS feedback (
	id              TEXT PRIMARY KEY,
	text            TEXT NOT NULL,
	source          TEXT NOT NULL,
	category        TEXT NOT NULL DEFAULT 'other',
	sentiment       TEXT NOT NULL DEFAULT 'neutral',
	sentiment_score DOUBLE PRECISION NOT NULL DEFAULT 0.5,
	user_tier       TEXT NOT NULL DEFAULT 'free',
	company_size    TEXT NOT NULL DEFAULT 'small',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at);
CREATE INDEX IF NOT EXISTS idx_feedback_source ON feedback(source);

CREATE TABLE IF NOT EXISTS themes (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	priority_band  TEXT NOT NULL DEFAULT 'medium',
	priority_score INTEGER NOT NULL DEFAULT 8,
	status         TEXT NOT NULL DEFAULT 'active',
	volume         INTEGER NOT NULL DEFAULT 0,
	positive_count INTEGER NOT NULL DEFAULT 0,
	neutral_count  INTEGER NOT NULL DEFAULT 0,
	negative_count INTEGER NOT NULL DEFAULT 0,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_themes_status ON themes(status);

CREATE TABLE IF NOT EXISTS feedback_themes (
	feedback_id TEXT NOT NULL,
	theme_id    TEXT NOT NULL,
	PRIMARY KEY (feedback_id, theme_id)
);
CREATE INDEX IF NOT EXISTS idx_feedback_themes_theme ON feedback_themes(theme_id);
`

// InitSchema creates the tables and indexes if they do not exist yet.
func (s *Store) InitSchema(ctx context.Context) error {
	schema := sqliteSchema
	if s.driver == "postgres" {
		schema = postgresSchema
	}

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}
