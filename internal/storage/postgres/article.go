package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"news_briefing/internal/domain"
)

var articleColumns = []string{
	"id",
	"title",
	"link",
	"source_name",
	"published_at",
	"crawled_at",
	"category",
	"briefing_section",
	"keywords",
	"verdict_type",
	"verdict_score",
	"verdict_importance",
	"summary",
	"tldr",
	"highlights",
	"critiques",
	"market_take",
}

type articleRow struct {
	ID                string         `db:"id"`
	Title             string         `db:"title"`
	Link              string         `db:"link"`
	SourceName        string         `db:"source_name"`
	PublishedAt       time.Time      `db:"published_at"`
	CrawledAt         sql.NullTime   `db:"crawled_at"`
	Category          string         `db:"category"`
	BriefingSection   string         `db:"briefing_section"`
	Keywords          pq.StringArray `db:"keywords"`
	VerdictType       string         `db:"verdict_type"`
	VerdictScore      float64        `db:"verdict_score"`
	VerdictImportance string         `db:"verdict_importance"`
	Summary           string         `db:"summary"`
	TLDR              string         `db:"tldr"`
	Highlights        string         `db:"highlights"`
	Critiques         string         `db:"critiques"`
	MarketTake        string         `db:"market_take"`
}

func (r articleRow) toDomain() domain.Article {
	a := domain.Article{
		ID:              domain.ArticleID(r.ID),
		Title:           r.Title,
		Link:            r.Link,
		SourceName:      r.SourceName,
		PublishedAt:     r.PublishedAt.UTC(),
		Category:        r.Category,
		BriefingSection: r.BriefingSection,
		Keywords:        []string(r.Keywords),
		Verdict: domain.Verdict{
			Type:       r.VerdictType,
			Score:      r.VerdictScore,
			Importance: r.VerdictImportance,
		},
		Summary:    r.Summary,
		TLDR:       r.TLDR,
		Highlights: r.Highlights,
		Critiques:  r.Critiques,
		MarketTake: r.MarketTake,
	}
	if r.CrawledAt.Valid {
		a.CrawledAt = r.CrawledAt.Time.UTC()
	}
	return a
}

// ArticleStore is the content source: enriched articles written by the
// summarisation pipeline, read-only from here.
type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// FetchArticlesInWindow returns articles published within [start, end],
// newest first.
func (s *ArticleStore) FetchArticlesInWindow(ctx context.Context, start, end time.Time) ([]domain.Article, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(articleColumns...).
		From("articles").
		Where(sb.Between("published_at", start, end)).
		OrderBy("published_at").Desc()

	query, args := sb.Build()

	var rows []articleRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: select articles in window: %w", domain.ErrUpstreamUnavailable, err)
	}

	articles := make([]domain.Article, len(rows))
	for i, r := range rows {
		articles[i] = r.toDomain()
	}
	return articles, nil
}

// FetchArticleDetailsByIDs returns the enriched record of every id the
// database knows. Missing ids are simply absent from the map.
func (s *ArticleStore) FetchArticleDetailsByIDs(ctx context.Context, ids []domain.ArticleID) (map[domain.ArticleID]domain.Article, error) {
	result := make(map[domain.ArticleID]domain.Article, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = string(id)
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(articleColumns...).
		From("articles").
		Where("id = ANY(" + sb.Var(pq.Array(raw)) + ")")

	query, args := sb.Build()

	var rows []articleRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: select articles by id: %w", domain.ErrUpstreamUnavailable, err)
	}

	for _, r := range rows {
		a := r.toDomain()
		result[a.ID] = a
	}
	return result, nil
}

// AvailableDates lists the Shanghai calendar dates that have articles,
// newest first.
func (s *ArticleStore) AvailableDates(ctx context.Context, limit int) ([]string, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("to_char(published_at AT TIME ZONE 'Asia/Shanghai', 'YYYY-MM-DD') AS day").
		Distinct().
		From("articles").
		OrderBy("day").Desc().
		Limit(limit)

	query, args := sb.Build()

	var dates []string
	if err := s.db.SelectContext(ctx, &dates, query, args...); err != nil {
		return nil, fmt.Errorf("%w: select available dates: %w", domain.ErrUpstreamUnavailable, err)
	}
	return dates, nil
}

// Categories lists the distinct non-empty categories.
func (s *ArticleStore) Categories(ctx context.Context) ([]string, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("category").
		Distinct().
		From("articles").
		Where(sb.NotEqual("category", "")).
		OrderBy("category")

	query, args := sb.Build()

	var categories []string
	if err := s.db.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("%w: select categories: %w", domain.ErrUpstreamUnavailable, err)
	}
	return categories, nil
}
