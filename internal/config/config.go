package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	defaultSeenNewsFile = "seen_news.json"
	defaultLookbackDays = 7
)

// Config holds everything one run needs, resolved from the environment once
// at startup so nothing else reads os.Getenv.
type Config struct {
	Tickers      []string
	SeenNewsFile string
	LookbackDays int

	FinnhubAPIKey      string
	AlphaVantageAPIKey string
	MassiveAPIKey      string

	OpenAIAPIKey    string
	AnthropicAPIKey string

	DatabaseURL string
	RedisURL    string
}

// Load builds the run configuration from the process environment. A missing
// or empty STOCK_LIST yields an empty ticker list, not an error; the caller
// decides how loudly to complain.
func Load() *Config {
	cfg := &Config{
		Tickers:            splitTickers(os.Getenv("STOCK_LIST")),
		SeenNewsFile:       os.Getenv("SEEN_NEWS_FILE"),
		LookbackDays:       defaultLookbackDays,
		FinnhubAPIKey:      os.Getenv("FINNHUB_API_KEY"),
		AlphaVantageAPIKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
		MassiveAPIKey:      os.Getenv("MASSIVE_API_KEY"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
	}

	if cfg.SeenNewsFile == "" {
		cfg.SeenNewsFile = defaultSeenNewsFile
	}

	if v := os.Getenv("NEWS_LOOKBACK_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.LookbackDays = days
		}
	}

	return cfg
}

func splitTickers(raw string) []string {
	if raw == "" {
		return nil
	}

	var tickers []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}
