package collector

import (
	"log/slog"

	"github.com/jsonchan000/fin-news-ai/internal/model"
	"github.com/jsonchan000/fin-news-ai/pkg/news"
)

// Collector groups fresh provider articles per ticker while recording every
// article URL into the seen set.
type Collector struct {
	source news.Client
}

func New(source news.Client) *Collector {
	return &Collector{source: source}
}

// Collect fetches company news for each ticker in the given order. A ticker
// whose fetch fails is logged and skipped; the remaining tickers still run.
// Every item's URL is marked seen whether or not the item has a headline, but
// only items with a headline make it into the batch. The seen set is not used
// to filter the current run's output; it only suppresses items in future runs.
func (c *Collector) Collect(tickers []string, seen model.SeenSet) model.Batch {
	batch := model.Batch{}

	for _, symbol := range tickers {
		articles, err := c.source.CompanyNews(symbol)
		if err != nil {
			slog.Error("could not fetch company news",
				"source", c.source.Name(), "ticker", symbol, "error", err)
			continue
		}

		if len(articles) == 0 {
			continue
		}

		slog.Info("company news fetched",
			"source", c.source.Name(), "ticker", symbol, "count", len(articles))

		var items []model.NewsItem
		for _, a := range articles {
			url := a.URL
			if url == "" {
				url = model.URLUnavailable
			}
			seen.Add(url)

			if a.Headline == "" {
				continue
			}

			items = append(items, model.NewsItem{
				Headline:    a.Headline,
				Summary:     a.Summary,
				URL:         a.URL,
				Publisher:   a.Publisher,
				PublishedAt: a.PublishedAt,
			})
		}

		if len(items) > 0 {
			batch[symbol] = items
		}
	}

	return batch
}
