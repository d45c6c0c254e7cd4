package news

import "time"

// Article is one raw news record as returned by a provider. Any field may be
// empty; the pipeline decides what to do with incomplete records.
type Article struct {
	Headline    string
	Summary     string
	URL         string
	Publisher   string
	PublishedAt time.Time
}

type Client interface {
	CompanyNews(symbol string) ([]Article, error)
	Name() string
}
