package llm

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBuildThemeExtractionPrompt(t *testing.T) {
	prompt := BuildThemeExtractionPrompt([]string{"slow dashboard", "want dark mode"})

	assert.Contains(t, prompt, "slow dashboard\n---\nwant dark mode")
	assert.Contains(t, prompt, "JSON array")
	assert.NotContains(t, prompt, "{FEEDBACK}")
}

func TestBuildThemeExtractionPromptTruncates(t *testing.T) {
	prompt := BuildThemeExtractionPrompt([]string{strings.Repeat("x", 5000)})

	assert.Less(t, len(prompt), len(DefaultThemePromptTemplate)+maxFeedbackChars+1)
}

func TestBuildThemeExtractionPromptTruncatesOnRuneBoundary(t *testing.T) {
	// 3-byte runes never line up with the byte cap
	prompt := BuildThemeExtractionPrompt([]string{strings.Repeat("日", 1000)})

	assert.True(t, utf8.ValidString(prompt), "truncation must not split a rune")
}

func TestThemePromptTemplateOverride(t *testing.T) {
	t.Setenv("THEME_PROMPT_TEMPLATE", "Custom: {FEEDBACK}")

	prompt := BuildThemeExtractionPrompt([]string{"a", "b"})
	assert.Equal(t, "Custom: a\n---\nb", prompt)
}
