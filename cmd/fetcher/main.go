package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jsonchan000/fin-news-ai/db"
	"github.com/jsonchan000/fin-news-ai/internal/collector"
	"github.com/jsonchan000/fin-news-ai/internal/config"
	"github.com/jsonchan000/fin-news-ai/internal/model"
	"github.com/jsonchan000/fin-news-ai/internal/repository"
	"github.com/jsonchan000/fin-news-ai/pkg/llm"
	"github.com/jsonchan000/fin-news-ai/pkg/news"
)

const fetchLimit = 50

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg := config.Load()

	if len(cfg.Tickers) == 0 {
		slog.Warn("STOCK_LIST is not set or empty, nothing to fetch")
	}

	source := newsClient(cfg)
	if source == nil {
		slog.Error("no news source API keys configured")
		os.Exit(1)
	}

	store := seenStore(cfg)
	defer db.CloseRedis()

	seen, err := store.Load()
	if err != nil {
		slog.Warn("could not load seen set, starting empty", "error", err)
		seen = model.NewSeenSet()
	}
	slog.Info("fetching company news", "source", source.Name(), "tickers", len(cfg.Tickers), "seen_urls", seen.Len())

	batch := collector.New(source).Collect(cfg.Tickers, seen)

	var archive *repository.ArticleRepository
	if cfg.DatabaseURL != "" && len(batch) > 0 {
		if err := db.Connect(cfg.DatabaseURL); err != nil {
			slog.Warn("could not connect to article archive", "error", err)
		} else {
			defer db.Close()
			archive = repository.NewArticleRepository(db.DB)
		}
	}

	if err := processBatch(cfg.Tickers, batch, seen, store, newAnalyzer(cfg), archive); err != nil {
		log.Fatalf("error saving seen set: %v", err)
	}
}

// processBatch reports and persists one run's results. An empty batch leaves
// the stored seen set untouched; otherwise the updated set is saved after the
// per-ticker reports, and a save failure is returned to abort the run.
func processBatch(tickers []string, batch model.Batch, seen model.SeenSet, store repository.SeenStore, analyzer llm.Analyzer, archive *repository.ArticleRepository) error {
	if len(batch) == 0 {
		slog.Info("no new articles found to analyze")
		return nil
	}

	slog.Info("new articles collected", "tickers", len(batch))

	for _, ticker := range tickers {
		items, ok := batch[ticker]
		if !ok {
			continue
		}

		report(ticker, items, analyzer)

		if archive != nil {
			archiveArticles(archive, ticker, items)
		}
	}

	if err := store.Save(seen); err != nil {
		return err
	}

	slog.Info("run complete", "seen_urls", seen.Len())
	return nil
}

// newsClient picks the provider for this run; FinnHub wins when several keys
// are configured.
func newsClient(cfg *config.Config) news.Client {
	if cfg.FinnhubAPIKey != "" {
		return news.NewFinnHubClient(cfg.FinnhubAPIKey, cfg.LookbackDays)
	}
	if cfg.AlphaVantageAPIKey != "" {
		return news.NewAlphaVantageClient(cfg.AlphaVantageAPIKey, fetchLimit)
	}
	if cfg.MassiveAPIKey != "" {
		return news.NewMassiveClient(cfg.MassiveAPIKey, fetchLimit)
	}
	return nil
}

func seenStore(cfg *config.Config) repository.SeenStore {
	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(cfg.RedisURL); err != nil {
			slog.Warn("could not connect to Redis, using file store", "error", err)
		} else {
			return repository.NewRedisSeenStore(db.Redis)
		}
	}
	return repository.NewFileSeenStore(cfg.SeenNewsFile)
}

func newAnalyzer(cfg *config.Config) llm.Analyzer {
	if cfg.OpenAIAPIKey != "" {
		return llm.NewOpenAIAnalyzer(cfg.OpenAIAPIKey)
	}
	if cfg.AnthropicAPIKey != "" {
		return llm.NewAnthropicAnalyzer(cfg.AnthropicAPIKey)
	}
	return llm.NewNoopAnalyzer()
}

// report prints the consolidated view for one ticker. An analysis failure
// degrades to a headlines-only report; it never aborts the run.
func report(ticker string, items []model.NewsItem, analyzer llm.Analyzer) {
	inputs := make([]llm.NewsInput, len(items))
	for i, item := range items {
		inputs[i] = llm.NewsInput{Headline: item.Headline, Summary: item.Summary}
	}

	result, err := analyzer.Analyze(ticker, inputs)
	if err != nil {
		slog.Error("analysis failed", "ticker", ticker, "error", err)
	}

	divider := strings.Repeat("=", 60)
	fmt.Println(divider)
	fmt.Printf("Consolidated analysis for %s (%d article(s))\n", ticker, len(items))
	fmt.Println(divider)

	if result != nil {
		fmt.Printf("  Overall sentiment: %s\n", result.OverallSentiment)
		fmt.Printf("  Overall impact:    %d/10\n", result.OverallImpactScore)
		fmt.Printf("\n  Key drivers: %s\n", result.KeyDrivers)
		fmt.Printf("\n  Most impactful: %s\n", result.MostImpactful.Headline)
		fmt.Printf("  Reasoning: %s\n", result.MostImpactful.Reasoning)
	} else {
		for _, item := range items {
			fmt.Printf("  - %s\n", item.Headline)
		}
	}
	fmt.Println()
}

func archiveArticles(archive *repository.ArticleRepository, ticker string, items []model.NewsItem) {
	var saved, duplicated, errors int

	for _, item := range items {
		success, err := archive.SaveArticle(ticker, item)
		if err != nil {
			slog.Error("error archiving article", "ticker", ticker, "error", err)
			errors++
			continue
		}

		if !success {
			duplicated++
			continue
		}

		saved++
	}

	slog.Info("archive complete", "ticker", ticker, "saved", saved, "duplicated", duplicated, "errors", errors)
}
