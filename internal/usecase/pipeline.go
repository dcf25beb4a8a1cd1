package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"InsuranceNewsAgent/internal/article"
	"InsuranceNewsAgent/internal/domain"
	"InsuranceNewsAgent/internal/enrich"
	"InsuranceNewsAgent/internal/ports"
)

// PipelineDeps wires all collaborators into the enrichment pipeline.
type PipelineDeps struct {
	Search     ports.SearchClient
	Structurer *article.Structurer
	References *article.ReferenceRegistry
	Enricher   *enrich.Enricher
	Repository ports.ArticleRepository
	Logger     *slog.Logger
}

// Pipeline implements the search → structure → reference-tag → enrich
// workflow. A run always yields one enriched record per structured article;
// only a search-collaborator failure propagates to the caller.
type Pipeline struct {
	search     ports.SearchClient
	structurer *article.Structurer
	references *article.ReferenceRegistry
	enricher   *enrich.Enricher
	repository ports.ArticleRepository
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		search:     deps.Search,
		structurer: deps.Structurer,
		references: deps.References,
		enricher:   deps.Enricher,
		repository: deps.Repository,
		logger:     deps.Logger,
	}
}

// Run executes one pass over the query results. Articles are processed
// sequentially in provider order; a failed enrichment for one article
// never aborts the rest of the batch.
func (p *Pipeline) Run(ctx context.Context, query string) ([]domain.EnrichedArticle, error) {
	if p.search == nil {
		return nil, fmt.Errorf("search client is not configured")
	}

	payload, err := p.search.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	structured := p.structurer.Structure(payload)
	if len(structured) == 0 {
		p.info("no articles found", "query", query)
		return []domain.EnrichedArticle{}, nil
	}

	structured = p.references.Enrich(structured)
	enriched := p.enricher.EnrichAll(ctx, structured)
	p.info("enrichment finished", "articles", len(enriched))

	if p.repository != nil {
		// Persistence feeds the read-side API; a storage hiccup must not
		// discard an already-produced batch.
		if err := p.repository.SaveEnriched(ctx, enriched); err != nil {
			p.warn("persist enriched articles", "error", err)
		}
	}

	return enriched, nil
}

func (p *Pipeline) info(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
