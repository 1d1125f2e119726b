package types

import "time"

// Sentiment is the three-way sentiment judgment attached to feedback.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Feedback is a single piece of customer feedback. Rows are immutable
// after creation.
type Feedback struct {
	ID             string    `json:"id"`
	Text           string    `json:"text"`
	Source         string    `json:"source"`
	Category       string    `json:"category"`
	Sentiment      Sentiment `json:"sentiment"`
	SentimentScore float64   `json:"sentiment_score"`
	UserTier       string    `json:"user_tier"`
	CompanySize    string    `json:"company_size"`
	CreatedAt      time.Time `json:"created_at"`
}

// FeedbackFilter narrows a feedback listing. Zero-valued fields are
// ignored; Limit <= 0 falls back to the store default.
type FeedbackFilter struct {
	Source    string
	Sentiment string
	UserTier  string
	ThemeID   string
	Limit     int
}
