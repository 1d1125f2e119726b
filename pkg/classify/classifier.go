// Package classify wraps text-classification providers that judge the
// sentiment of a text blob. Results are raw provider output; mapping
// into the service's sentiment enum happens in pkg/sentiment.
package classify

import "context"

// Result is the raw label/score pair returned by a classification
// provider. Labels are provider-defined tokens such as "POSITIVE" or
// "NEGATIVE"; the score is expected in [0,1] but is not clamped.
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier is the interface for sentiment-classification providers.
type Classifier interface {
	// Classify returns the sentiment verdict for a text blob.
	Classify(ctx context.Context, text string) (*Result, error)

	// Name returns the provider name (for logging)
	Name() string
}
