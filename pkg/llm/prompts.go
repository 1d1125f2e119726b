package llm

import (
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultThemePromptTemplate is the default theme-extraction prompt.
// Variables available: {FEEDBACK}
const DefaultThemePromptTemplate = `Analyze the following customer feedback and identify 3-5 distinct themes.
For each theme, provide:
1. A descriptive name (format: [User/Segment] + [Problem] + [Context])
2. A brief description

Feedback:
{FEEDBACK}

Return ONLY a JSON array with this exact format:
[{"name": "...", "description": "..."}]`

const (
	// feedbackDelimiter separates individual feedback texts in the prompt.
	feedbackDelimiter = "\n---\n"

	// maxFeedbackChars caps the feedback content embedded in the prompt,
	// keeping the call inside provider input limits.
	maxFeedbackChars = 2000
)

// GetThemePromptTemplate returns the prompt template from env var or default
func GetThemePromptTemplate() string {
	if customPrompt := os.Getenv("THEME_PROMPT_TEMPLATE"); customPrompt != "" {
		return customPrompt
	}
	return DefaultThemePromptTemplate
}

// BuildThemeExtractionPrompt creates the theme-extraction prompt shared
// across all providers. The joined feedback content is truncated to
// maxFeedbackChars before substitution.
func BuildThemeExtractionPrompt(texts []string) string {
	content := strings.Join(texts, feedbackDelimiter)
	if len(content) > maxFeedbackChars {
		cut := maxFeedbackChars
		// don't split a multi-byte rune at the cut point
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut]
	}

	return strings.ReplaceAll(GetThemePromptTemplate(), "{FEEDBACK}", content)
}
