package repository

import (
	"database/sql"

	"github.com/jsonchan000/fin-news-ai/internal/model"
)

// ArticleRepository archives qualifying articles in Postgres for later
// inspection. The archive is optional and strictly additive; the seen set
// remains the source of truth for deduplication.
type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// SaveArticle inserts one titled article. Returns false when the URL was
// already archived by an earlier run.
func (r *ArticleRepository) SaveArticle(symbol string, item model.NewsItem) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO article(symbol, headline, summary, url, publisher, published_at)
		VALUES($1, $2, $3, $4, $5, $6)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, symbol, item.Headline, item.Summary, item.URL, item.Publisher, item.PublishedAt).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}
