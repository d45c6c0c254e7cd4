package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicAnalyzer struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicAnalyzer(apiKey string) *AnthropicAnalyzer {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicAnalyzer{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicAnalyzer) Analyze(ticker string, items []NewsInput) (*AnalysisResult, error) {
	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analysisSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(formatNewsForAnalysis(ticker, items))),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	content := cleanJSONResponse(resp.Content[0].Text)

	var parsed struct {
		OverallSentiment   string            `json:"overall_sentiment"`
		OverallImpactScore int               `json:"overall_impact_score"`
		KeyDrivers         string            `json:"key_drivers"`
		MostImpactfulNews  MostImpactfulNews `json:"most_impactful_news"`
	}

	err = json.Unmarshal([]byte(content), &parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	return &AnalysisResult{
		OverallSentiment:   parsed.OverallSentiment,
		OverallImpactScore: parsed.OverallImpactScore,
		KeyDrivers:         parsed.KeyDrivers,
		MostImpactful:      parsed.MostImpactfulNews,
		ModelUsed:          c.modelName,
	}, nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
