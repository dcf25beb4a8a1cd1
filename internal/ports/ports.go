package ports

import (
	"context"

	"InsuranceNewsAgent/internal/domain"
)

// SearchClient queries an upstream news-search provider. The returned
// payload is intentionally untyped: providers do not guarantee a stable
// response shape, and shape dispatch belongs to the result parser.
type SearchClient interface {
	Search(ctx context.Context, query string) (any, error)
}

// TextGenerator maps a prompt to a text completion. Implementations may
// fail; all resilience lives in the enrichment adapter.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Entity is a named-entity span with its type label (e.g. GPE, LOC).
type Entity struct {
	Text  string
	Label string
}

// EntityRecognizer extracts named entities from plain text.
type EntityRecognizer interface {
	Entities(text string) ([]Entity, error)
}

// ArticleRepository persists enriched articles for the read-side API.
type ArticleRepository interface {
	SaveEnriched(ctx context.Context, articles []domain.EnrichedArticle) error
	ListEnriched(ctx context.Context, filter ListFilter) ([]domain.EnrichedArticle, error)
	CountByField(ctx context.Context, field string, filter ListFilter) (map[string]int, error)
}

// ListFilter narrows read-side queries. Zero values mean "no constraint".
type ListFilter struct {
	Since    string // inclusive lower bound on the article date, YYYY-MM-DD
	Category string
	Limit    uint64
}
