package llm

// NoopAnalyzer is used when no LLM API key is configured.
type NoopAnalyzer struct{}

func NewNoopAnalyzer() *NoopAnalyzer { return &NoopAnalyzer{} }

// Analyze reports no analysis; callers fall back to a headlines-only report.
func (n *NoopAnalyzer) Analyze(_ string, _ []NewsInput) (*AnalysisResult, error) {
	return nil, nil
}
