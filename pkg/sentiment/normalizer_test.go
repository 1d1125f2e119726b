package sentiment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/vportella/feedbackiq/pkg/classify"
	"github.com/vportella/feedbackiq/pkg/types"
)

type fakeClassifier struct {
	result   *classify.Result
	err      error
	lastText string
}

func (c *fakeClassifier) Classify(ctx context.Context, text string) (*classify.Result, error) {
	c.lastText = text
	return c.result, c.err
}

func (c *fakeClassifier) Name() string { return "fake" }

func TestNormalizePositive(t *testing.T) {
	n := NewNormalizer(&fakeClassifier{result: &classify.Result{Label: "POSITIVE", Score: 0.97}})

	label, score := n.Normalize(context.Background(), "love it")
	assert.Equal(t, types.SentimentPositive, label)
	assert.Equal(t, 0.97, score, "provider score passes through")
}

func TestNormalizeNegative(t *testing.T) {
	n := NewNormalizer(&fakeClassifier{result: &classify.Result{Label: "NEGATIVE", Score: 0.88}})

	label, score := n.Normalize(context.Background(), "hate it")
	assert.Equal(t, types.SentimentNegative, label)
	assert.Equal(t, 0.88, score)
}

func TestNormalizeUnknownLabel(t *testing.T) {
	n := NewNormalizer(&fakeClassifier{result: &classify.Result{Label: "MIXED", Score: 0.9}})

	label, score := n.Normalize(context.Background(), "meh")
	assert.Equal(t, types.SentimentNeutral, label)
	assert.Equal(t, FallbackScore, score, "unrecognized labels fall back, score included")
}

func TestNormalizeClassifierError(t *testing.T) {
	n := NewNormalizer(&fakeClassifier{err: errors.New("classifier down")})

	label, score := n.Normalize(context.Background(), "anything")
	assert.Equal(t, types.SentimentNeutral, label)
	assert.Equal(t, FallbackScore, score)
}

func TestNormalizeNilClassifier(t *testing.T) {
	n := NewNormalizer(nil)

	label, score := n.Normalize(context.Background(), "anything")
	assert.Equal(t, types.SentimentNeutral, label)
	assert.Equal(t, FallbackScore, score)
}

func TestNormalizeTruncatesLongText(t *testing.T) {
	fc := &fakeClassifier{result: &classify.Result{Label: "POSITIVE", Score: 0.9}}
	n := NewNormalizer(fc)

	n.Normalize(context.Background(), strings.Repeat("x", 2000))
	assert.Len(t, fc.lastText, maxClassifyChars)
}

func TestNormalizeTruncatesOnRuneBoundary(t *testing.T) {
	fc := &fakeClassifier{result: &classify.Result{Label: "POSITIVE", Score: 0.9}}
	n := NewNormalizer(fc)

	// 3-byte runes never line up with the 512-byte cap
	n.Normalize(context.Background(), strings.Repeat("日", 600))
	assert.True(t, utf8.ValidString(fc.lastText), "truncation must not split a rune")
	assert.LessOrEqual(t, len(fc.lastText), maxClassifyChars)
	assert.NotEmpty(t, fc.lastText)
}
