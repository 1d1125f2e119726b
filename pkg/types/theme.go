package types

import "time"

// PriorityBand is the coarse urgency tag attached to a theme.
type PriorityBand string

const (
	PriorityCritical PriorityBand = "critical"
	PriorityHigh     PriorityBand = "high"
	PriorityMedium   PriorityBand = "medium"
	PriorityLow      PriorityBand = "low"
)

// ThemeStatus controls whether a theme participates in ranking and
// extraction eligibility. Only active themes are ranked.
type ThemeStatus string

const (
	ThemeActive   ThemeStatus = "active"
	ThemeArchived ThemeStatus = "archived"
)

// Theme is a named recurring issue aggregating linked feedback. The
// priority score is derived from the band once, at creation time.
type Theme struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	PriorityBand  PriorityBand `json:"priority_band"`
	PriorityScore int          `json:"priority_score"`
	Status        ThemeStatus  `json:"status"`
	Volume        int          `json:"volume"`
	PositiveCount int          `json:"positive_count"`
	NeutralCount  int          `json:"neutral_count"`
	NegativeCount int          `json:"negative_count"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// ThemeStats is a theme with its join-time aggregates. AvgSentiment is
// always numeric; a theme with no linked feedback reports 0.
type ThemeStats struct {
	Theme
	FeedbackCount int     `json:"feedback_count"`
	AvgSentiment  float64 `json:"avg_sentiment"`
}

// ThemeDetail is a theme with its linked feedback, most recent first.
type ThemeDetail struct {
	Theme
	Feedback []Feedback `json:"feedback"`
}

// ThemeProposal is a candidate theme parsed from model
// output. Untrusted input: either field may be empty.
type ThemeProposal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ThemeRef identifies a theme created from a proposal.
type ThemeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
