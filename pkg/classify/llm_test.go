package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.response, g.err
}

func (g *fakeGenerator) Name() string { return "fake" }

func TestGeneratorClassifierParsesVerdict(t *testing.T) {
	tests := []struct {
		response  string
		wantLabel string
		wantScore float64
	}{
		{"NEGATIVE 0.92", "NEGATIVE", 0.92},
		{"positive 0.8", "POSITIVE", 0.8},
		{"NEUTRAL", "NEUTRAL", 0.5},
		{"  POSITIVE 0.7  \nsome explanation on a second line", "POSITIVE", 0.7},
		{"NEGATIVE.", "NEGATIVE", 0.5},
		{"NEGATIVE: 0.6", "NEGATIVE", 0.6},
	}

	for _, tt := range tests {
		c := NewGeneratorClassifier(&fakeGenerator{response: tt.response})
		result, err := c.Classify(context.Background(), "some feedback")
		require.NoError(t, err, "response: %q", tt.response)
		assert.Equal(t, tt.wantLabel, result.Label, "response: %q", tt.response)
		assert.Equal(t, tt.wantScore, result.Score, "response: %q", tt.response)
	}
}

func TestGeneratorClassifierInvalidLabel(t *testing.T) {
	c := NewGeneratorClassifier(&fakeGenerator{response: "I think this is mostly positive overall"})

	result, err := c.Classify(context.Background(), "some feedback")
	require.NoError(t, err)
	assert.Equal(t, "NEUTRAL", result.Label)
	assert.Equal(t, 0.5, result.Score)
}

func TestGeneratorClassifierError(t *testing.T) {
	c := NewGeneratorClassifier(&fakeGenerator{err: errors.New("model unavailable")})

	_, err := c.Classify(context.Background(), "some feedback")
	assert.Error(t, err)
}

func TestGeneratorClassifierEmptyResponse(t *testing.T) {
	c := NewGeneratorClassifier(&fakeGenerator{response: "   "})

	_, err := c.Classify(context.Background(), "some feedback")
	assert.Error(t, err)
}
