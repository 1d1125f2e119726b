package classify

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/vportella/feedbackiq/pkg/llm"
)

// GeneratorClassifier adapts any generative provider into a sentiment
// classifier by asking for a one-word verdict and validating it.
type GeneratorClassifier struct {
	generator llm.Generator
}

// NewGeneratorClassifier creates a classifier backed by a generative provider
func NewGeneratorClassifier(generator llm.Generator) *GeneratorClassifier {
	return &GeneratorClassifier{generator: generator}
}

// Name returns the provider name
func (c *GeneratorClassifier) Name() string {
	return fmt.Sprintf("LLM classifier (%s)", c.generator.Name())
}

const sentimentPrompt = `Classify the sentiment of this customer feedback.

Feedback: %s

Respond with ONE line only: the label POSITIVE, NEGATIVE or NEUTRAL,
a space, and a confidence between 0 and 1.
Example: NEGATIVE 0.92

Sentiment:`

// Classify asks the generator for a label and confidence, then cleans
// up and validates the response the same way a one-word categorization
// answer is handled: first line only, known labels only.
func (c *GeneratorClassifier) Classify(ctx context.Context, text string) (*Result, error) {
	out, err := c.generator.Generate(ctx, fmt.Sprintf(sentimentPrompt, text))
	if err != nil {
		return nil, err
	}

	verdict := strings.TrimSpace(out)
	if idx := strings.Index(verdict, "\n"); idx != -1 {
		verdict = strings.TrimSpace(verdict[:idx])
	}
	verdict = strings.TrimSuffix(verdict, ".")

	fields := strings.Fields(strings.ToUpper(verdict))
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty classification response")
	}

	label := strings.Trim(fields[0], ":,")
	validLabels := map[string]bool{
		"POSITIVE": true, "NEGATIVE": true, "NEUTRAL": true,
	}
	if !validLabels[label] {
		log.Printf("%s returned invalid label '%s', using NEUTRAL", c.Name(), verdict)
		return &Result{Label: "NEUTRAL", Score: 0.5}, nil
	}

	score := 0.5
	if len(fields) > 1 {
		if f, err := strconv.ParseFloat(fields[1], 64); err == nil {
			score = f
		}
	}

	return &Result{Label: label, Score: score}, nil
}
