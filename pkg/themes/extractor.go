// Package themes holds theme extraction, creation and ranking: parsing
// theme proposals out of generative model output, registering themes
// with band-derived priority scores, and ordering active themes.
package themes

import (
	"context"
	"encoding/json"
	"log"

	"github.com/vportella/feedbackiq/pkg/llm"
	"github.com/vportella/feedbackiq/pkg/types"
)

// MaxBatchSize is the most feedback items sent to the model per
// extraction run.
const MaxBatchSize = 50

// Extractor turns a batch of raw feedback texts into theme proposals
// using a generative model. All model and parse failures degrade to an
// empty proposal list; extraction never fails the caller.
type Extractor struct {
	generator llm.Generator
}

// NewExtractor creates an extractor backed by the given generator. A
// nil generator is allowed and disables extraction.
func NewExtractor(generator llm.Generator) *Extractor {
	return &Extractor{generator: generator}
}

// Extract asks the model for themes covering the given feedback texts.
// An empty batch returns no proposals without calling the model.
func (e *Extractor) Extract(ctx context.Context, texts []string) []types.ThemeProposal {
	if len(texts) == 0 {
		return nil
	}
	if e.generator == nil {
		log.Printf("Theme extraction skipped: no LLM provider configured")
		return nil
	}
	if len(texts) > MaxBatchSize {
		texts = texts[:MaxBatchSize]
	}

	prompt := llm.BuildThemeExtractionPrompt(texts)

	response, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Theme extraction failed (%s): %v", e.generator.Name(), err)
		return nil
	}

	proposals := parseProposals(response)
	if proposals == nil {
		log.Printf("Theme extraction returned no parseable themes (%s)", e.generator.Name())
	}
	return proposals
}

// parseProposals pulls the first JSON array out of model output and
// decodes it. Models often wrap the array in prose or code fences, so
// we scan for a balanced [...] span instead of decoding the whole
// response.
func parseProposals(response string) []types.ThemeProposal {
	raw := firstJSONArray(response)
	if raw == "" {
		return nil
	}

	var proposals []types.ThemeProposal
	if err := json.Unmarshal([]byte(raw), &proposals); err != nil {
		log.Printf("Warning: failed to decode theme array: %v", err)
		return nil
	}
	return proposals
}

// firstJSONArray returns the first bracket-balanced array in s, or ""
// if none closes. String literals and escapes are honored so brackets
// inside theme names don't break the scan.
func firstJSONArray(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '[':
			if start < 0 {
				start = i
			}
			depth++
		case ']':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
