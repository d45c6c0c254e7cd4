package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestMassiveCompanyNews(t *testing.T) {
	payload := map[string]interface{}{
		"results": []map[string]interface{}{
			{
				"title":         "Acme Corp Reports Q4 Earnings",
				"description":   "Acme Corp beat expectations with strong Q4 results.",
				"article_url":   "https://example.com/acme-q4",
				"published_utc": "2026-08-29T11:02:00Z",
				"publisher": map[string]interface{}{
					"name": "GlobeNewswire Inc.",
				},
			},
		},
		"status": "OK",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &MassiveClient{
		apiKey:     "test-key",
		limit:      50,
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.CompanyNews("ACME")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Acme Corp Reports Q4 Earnings", a.Headline)
	assert.Equal(t, "Acme Corp beat expectations with strong Q4 results.", a.Summary)
	assert.Equal(t, "https://example.com/acme-q4", a.URL)
	assert.Equal(t, "GlobeNewswire Inc.", a.Publisher)
	assert.Equal(t, 2026, a.PublishedAt.Year())
	assert.Equal(t, time.August, a.PublishedAt.Month())
	assert.Equal(t, 29, a.PublishedAt.Day())
}

func TestMassiveBadTimestamp(t *testing.T) {
	payload := map[string]interface{}{
		"results": []map[string]interface{}{
			{
				"title":         "Market Update",
				"description":   "General market overview.",
				"article_url":   "https://example.com/market",
				"published_utc": "yesterday",
				"publisher": map[string]interface{}{
					"name": "Reuters",
				},
			},
		},
		"status": "OK",
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := &MassiveClient{
		apiKey:     "test-key",
		limit:      50,
		httpClient: srv.Client(),
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}

	articles, err := client.CompanyNews("SPY")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, time.Time{}, articles[0].PublishedAt)
}
