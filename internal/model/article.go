package model

import (
	"sort"
	"time"
)

// URLUnavailable is recorded in the seen set when a provider item carries no URL.
const URLUnavailable = "data not available"

type NewsItem struct {
	Headline    string
	Summary     string
	URL         string
	Publisher   string
	PublishedAt time.Time
}

// Batch maps a ticker symbol to the titled articles found for it this run.
// A ticker has a key only when at least one titled article was found.
type Batch map[string][]NewsItem

// SeenSet tracks article URLs that have already been presented to the
// pipeline. Owned by a single run; not safe for concurrent use.
type SeenSet map[string]struct{}

func NewSeenSet(urls ...string) SeenSet {
	s := make(SeenSet, len(urls))
	for _, u := range urls {
		s[u] = struct{}{}
	}
	return s
}

func (s SeenSet) Add(url string) {
	s[url] = struct{}{}
}

func (s SeenSet) Contains(url string) bool {
	_, ok := s[url]
	return ok
}

func (s SeenSet) Len() int {
	return len(s)
}

// Slice returns the URLs in sorted order so that serialized output is
// deterministic across runs.
func (s SeenSet) Slice() []string {
	urls := make([]string, 0, len(s))
	for u := range s {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}
