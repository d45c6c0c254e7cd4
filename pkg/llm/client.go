package llm

import (
	"fmt"
	"strings"
)

// NewsInput is one titled article handed to the analysis stage.
type NewsInput struct {
	Headline string
	Summary  string
}

type MostImpactfulNews struct {
	Headline  string `json:"headline"`
	Reasoning string `json:"reasoning"`
}

// AnalysisResult is the consolidated read on one ticker's collected news.
type AnalysisResult struct {
	OverallSentiment   string
	OverallImpactScore int
	KeyDrivers         string
	MostImpactful      MostImpactfulNews
	ModelUsed          string
}

// Analyzer produces a consolidated analysis for one ticker's news. A nil
// result with a nil error means analysis is disabled for this run.
type Analyzer interface {
	Analyze(ticker string, items []NewsInput) (*AnalysisResult, error)
}

func formatNewsForAnalysis(ticker string, items []NewsInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Ticker: %s\n\n", ticker)
	for i, item := range items {
		fmt.Fprintf(&sb, "%d. Headline: %s\nSummary: %s\n\n", i+1, item.Headline, item.Summary)
	}
	return sb.String()
}
