package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type MassiveClient struct {
	apiKey     string
	limit      int
	httpClient *http.Client
}

func NewMassiveClient(apiKey string, limit int) *MassiveClient {
	return &MassiveClient{
		apiKey:     apiKey,
		limit:      limit,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *MassiveClient) Name() string {
	return "Massive"
}

func (c *MassiveClient) CompanyNews(symbol string) ([]Article, error) {
	reqURL := fmt.Sprintf(
		"https://api.massive.com/v2/reference/news?ticker=%s&limit=%d&order=desc&sort=published_utc&apiKey=%s",
		url.QueryEscape(symbol), c.limit, c.apiKey,
	)

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("massive fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw massiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("massive decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Results))
	for _, item := range raw.Results {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedUTC)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			Summary:     item.Description,
			URL:         item.ArticleURL,
			Publisher:   item.Publisher.Name,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type massiveResponse struct {
	Results []massiveResult `json:"results"`
}

type massiveResult struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	ArticleURL   string           `json:"article_url"`
	PublishedUTC string           `json:"published_utc"`
	Publisher    massivePublisher `json:"publisher"`
}

type massivePublisher struct {
	Name string `json:"name"`
}
