package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"InsuranceNewsAgent/internal/domain"
	"InsuranceNewsAgent/internal/ports"
)

// references is a reserved word in Postgres and must stay quoted.
const quotedReferencesColumn = `"references"`

// countableFields whitelists the columns the analytics endpoint may group
// by; anything else would allow arbitrary SQL identifiers into the query.
var countableFields = map[string]bool{
	"category":  true,
	"sentiment": true,
	"location":  true,
}

// PostgresRepository persists enriched articles for the read-side API.
type PostgresRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
}

var _ ports.ArticleRepository = (*PostgresRepository)(nil)

// NewPostgresRepository wires a sql.DB implementation.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveEnriched upserts each article snapshot keyed by URL.
func (r *PostgresRepository) SaveEnriched(ctx context.Context, articles []domain.EnrichedArticle) error {
	if r.db == nil || len(articles) == 0 {
		return nil
	}

	for _, a := range articles {
		references, err := json.Marshal(a.References)
		if err != nil {
			return fmt.Errorf("marshal references for %s: %w", a.URL, err)
		}

		query, args, err := r.builder.
			Insert("enriched_articles").
			Columns("url", "title", "source", "date", "location", "category",
				"summary", "sentiment", "recommendation", "financial_impact",
				quotedReferencesColumn, "research_references").
			Values(a.URL, a.Title, a.Source, a.Date, a.Location, a.Category,
				a.Summary, a.Sentiment, a.Recommendation, a.FinancialImpact,
				references, pq.Array(a.ResearchReferences)).
			Suffix(`ON CONFLICT (url) DO UPDATE
                    SET title = EXCLUDED.title,
                        summary = EXCLUDED.summary,
                        sentiment = EXCLUDED.sentiment,
                        category = EXCLUDED.category,
                        recommendation = EXCLUDED.recommendation,
                        financial_impact = EXCLUDED.financial_impact,
                        "references" = EXCLUDED."references",
                        research_references = EXCLUDED.research_references,
                        updated_at = NOW()`).
			ToSql()
		if err != nil {
			return fmt.Errorf("build upsert: %w", err)
		}

		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert article %s: %w", a.URL, err)
		}
	}

	return nil
}

// ListEnriched returns persisted articles matching the filter, newest
// first.
func (r *PostgresRepository) ListEnriched(ctx context.Context, filter ports.ListFilter) ([]domain.EnrichedArticle, error) {
	if r.db == nil {
		return nil, nil
	}

	builder := r.builder.
		Select("url", "title", "source", "date", "location", "category",
			"summary", "sentiment", "recommendation", "financial_impact",
			quotedReferencesColumn, "research_references").
		From("enriched_articles").
		OrderBy("date DESC")

	builder = applyFilter(builder, filter)
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query enriched: %w", err)
	}
	defer rows.Close()

	var articles []domain.EnrichedArticle
	for rows.Next() {
		var a domain.EnrichedArticle
		var references []byte
		if err := rows.Scan(&a.URL, &a.Title, &a.Source, &a.Date, &a.Location,
			&a.Category, &a.Summary, &a.Sentiment, &a.Recommendation,
			&a.FinancialImpact, &references, pq.Array(&a.ResearchReferences)); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		if len(references) > 0 {
			if err := json.Unmarshal(references, &a.References); err != nil {
				return nil, fmt.Errorf("decode references for %s: %w", a.URL, err)
			}
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return articles, nil
}

// CountByField groups matching articles by the given column for the
// dashboard aggregates.
func (r *PostgresRepository) CountByField(ctx context.Context, field string, filter ports.ListFilter) (map[string]int, error) {
	if !countableFields[field] {
		return nil, fmt.Errorf("field %s is not countable", field)
	}
	if r.db == nil {
		return map[string]int{}, nil
	}

	builder := r.builder.
		Select(field, "COUNT(*)").
		From("enriched_articles").
		GroupBy(field)
	builder = applyFilter(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[value] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return counts, nil
}

func applyFilter(builder sq.SelectBuilder, filter ports.ListFilter) sq.SelectBuilder {
	if filter.Since != "" {
		builder = builder.Where(sq.GtOrEq{"date": filter.Since})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	return builder
}
