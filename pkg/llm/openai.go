package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const analysisSystemPrompt = `You are a financial analyst. Given a stock ticker and a list of recent news headlines and summaries about it, provide a consolidated analysis of the whole list.

Rules:
1. Judge the overall direction across all items, not any single article
2. Be specific: name products, figures, and events from the articles
3. Do not invent facts that are not in the articles
4. Keep predictions hedged (may, could, might)

Output as JSON only, no other text:
{
  "overall_sentiment": "one of: Bullish, Bearish, Neutral, Mixed",
  "overall_impact_score": 1-10 how strongly this news should move the stock (10 = very strongly),
  "key_drivers": "one or two sentences naming the main forces behind the sentiment",
  "most_impactful_news": {
    "headline": "headline of the single most impactful article",
    "reasoning": "one sentence on why it matters most"
  }
}`

type OpenAIAnalyzer struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIAnalyzer(apiKey string) *OpenAIAnalyzer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIAnalyzer{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIAnalyzer) Analyze(ticker string, items []NewsInput) (*AnalysisResult, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(analysisSystemPrompt),
			openai.UserMessage(formatNewsForAnalysis(ticker, items)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

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
