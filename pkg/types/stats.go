package types

// SentimentCount is one bucket of the sentiment distribution.
type SentimentCount struct {
	Sentiment string `json:"sentiment"`
	Count     int    `json:"count"`
}

// SourceCount is one entry of the top-sources breakdown.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Stats holds the aggregate counters served by the stats endpoint.
// Slices are never nil so the JSON encoding is always an array.
type Stats struct {
	TotalFeedback         int              `json:"totalFeedback"`
	TotalThemes           int              `json:"totalThemes"`
	SentimentDistribution []SentimentCount `json:"sentimentDistribution"`
	TopSources            []SourceCount    `json:"topSources"`
}

// EmptyStats is the degraded response used when the store is not
// reachable or not yet initialized.
func EmptyStats() *Stats {
	return &Stats{
		SentimentDistribution: []SentimentCount{},
		TopSources:            []SourceCount{},
	}
}
