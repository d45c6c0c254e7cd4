package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type AlphaVantageClient struct {
	apiKey     string
	limit      int
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string, limit int) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		limit:      limit,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) CompanyNews(symbol string) ([]Article, error) {
	reqURL := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=NEWS_SENTIMENT&tickers=%s&limit=%d&sort=LATEST&apikey=%s",
		url.QueryEscape(symbol), c.limit, c.apiKey,
	)

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		publishedAt, err := time.Parse("20060102T150405", item.TimePublished)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			Summary:     item.Summary,
			URL:         item.URL,
			Publisher:   item.Source,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
}
