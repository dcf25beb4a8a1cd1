package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"InsuranceNewsAgent/internal/api"
	"InsuranceNewsAgent/internal/article"
	"InsuranceNewsAgent/internal/config"
	"InsuranceNewsAgent/internal/domain"
	"InsuranceNewsAgent/internal/enrich"
	"InsuranceNewsAgent/internal/extract"
	"InsuranceNewsAgent/internal/infrastructure/llm"
	"InsuranceNewsAgent/internal/infrastructure/ner"
	"InsuranceNewsAgent/internal/infrastructure/storage"
	"InsuranceNewsAgent/internal/infrastructure/tavily"
	"InsuranceNewsAgent/internal/logging"
	"InsuranceNewsAgent/internal/ports"
	"InsuranceNewsAgent/internal/search"
	"InsuranceNewsAgent/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
	server   *api.Server
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	registry := search.NewRegistry()
	registry.Register(tavily.NewClient(cfg.Search, nil))

	provider, err := registry.Resolve(cfg.Search.Provider)
	if err != nil {
		return nil, fmt.Errorf("resolve search provider: %w", err)
	}

	var generator ports.TextGenerator
	if cfg.OpenAI.APIKey != "" {
		generator = llm.NewOpenAIClient(cfg.OpenAI)
	}

	structurer := article.NewStructurer(article.StructurerDeps{
		Dates:      extract.NewDateExtractor(nil),
		Locations:  extract.NewLocationExtractor(ner.NewProseRecognizer()),
		Categories: extract.NewCategorizer(categoryRules(cfg.Categories)),
		Logger:     baseLogger.With("component", "structurer"),
	})

	var repository ports.ArticleRepository
	if cfg.Database.DSN != "" {
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		repository = storage.NewPostgresRepository(db)
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Search:     provider,
		Structurer: structurer,
		References: article.NewReferenceRegistry(trustedSources(cfg.TrustedSources)),
		Enricher:   enrich.NewEnricher(generator, baseLogger.With("component", "enricher")),
		Repository: repository,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	app := &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}
	if cfg.API.Enabled {
		app.server = api.NewServer(cfg.API.Addr, repository, baseLogger.With("component", "api"))
	}

	return app, nil
}

// Run executes one pipeline pass and, when configured, serves the read-side
// API until the context is cancelled.
func (a *Application) Run(ctx context.Context) error {
	query := usecase.BuildQuery(a.cfg.Keywords, time.Now())
	a.logger.Info("running query", "query", query)

	articles, err := a.pipeline.Run(ctx, query)
	if err != nil {
		return fmt.Errorf("pipeline run: %w", err)
	}

	for _, art := range articles {
		a.logger.Info("enriched article",
			"title", art.Title, "date", art.Date, "category", art.Category)
	}

	if a.server == nil {
		return nil
	}

	a.logger.Info("serving api", "addr", a.cfg.API.Addr)
	return a.server.Run(ctx)
}

func categoryRules(cfg []config.CategoryRuleConfig) []domain.CategoryRule {
	rules := make([]domain.CategoryRule, 0, len(cfg))
	for _, rule := range cfg {
		rules = append(rules, domain.CategoryRule{Name: rule.Name, Keywords: rule.Keywords})
	}
	return rules
}

func trustedSources(cfg []config.TrustedSourceConfig) []domain.TrustedSource {
	sources := make([]domain.TrustedSource, 0, len(cfg))
	for _, source := range cfg {
		sources = append(sources, domain.TrustedSource{
			Organization: source.Organization,
			Domains:      source.Domains,
		})
	}
	return sources
}
