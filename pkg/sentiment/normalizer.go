// Package sentiment maps classifier verdicts into the
// service's three-way sentiment enum.
package sentiment

import (
	"context"
	"log"
	"unicode/utf8"

	"github.com/vportella/feedbackiq/pkg/classify"
	"github.com/vportella/feedbackiq/pkg/types"
)

const (
	// maxClassifyChars caps the text submitted to the classifier.
	maxClassifyChars = 512

	// FallbackScore is the confidence reported whenever the classifier
	// verdict is absent, failed or unrecognized.
	FallbackScore = 0.5
)

// Normalizer turns classifier verdicts into a sentiment plus confidence.
// A nil classifier is valid and means no classifier is configured.
type Normalizer struct {
	classifier classify.Classifier
}

// NewNormalizer creates a normalizer over the given classifier (may be nil)
func NewNormalizer(classifier classify.Classifier) *Normalizer {
	return &Normalizer{classifier: classifier}
}

// Normalize scores the text. It never fails: any classifier error is logged
// and degrades to neutral with the fallback confidence, so ingestion is
// never blocked by sentiment scoring. Provider scores pass through
// unclamped for the POSITIVE/NEGATIVE labels.
func (n *Normalizer) Normalize(ctx context.Context, text string) (types.Sentiment, float64) {
	if n == nil || n.classifier == nil {
		return types.SentimentNeutral, FallbackScore
	}

	if len(text) > maxClassifyChars {
		cut := maxClassifyChars
		// don't split a multi-byte rune at the cut point
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	result, err := n.classifier.Classify(ctx, text)
	if err != nil {
		log.Printf("Sentiment scoring skipped: %v", err)
		return types.SentimentNeutral, FallbackScore
	}
	if result == nil {
		return types.SentimentNeutral, FallbackScore
	}

	switch result.Label {
	case "POSITIVE":
		return types.SentimentPositive, result.Score
	case "NEGATIVE":
		return types.SentimentNegative, result.Score
	default:
		return types.SentimentNeutral, FallbackScore
	}
}
