// Package enrich wraps the text-generation collaborator with the
// per-article resilience policy: every structured article maps to exactly
// one enriched record, falling back to a deterministic stand-in when the
// call fails or returns malformed output.
package enrich

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"InsuranceNewsAgent/internal/domain"
	"InsuranceNewsAgent/internal/ports"
)

// Fallback literals for a failed enrichment.
const (
	fallbackSummary         = "LLM enrichment failed."
	fallbackSentiment       = "Unknown"
	fallbackRecommendation  = "N/A"
	fallbackFinancialImpact = "Not specified"
)

// Outcome is the two-way result of enriching one article: either the
// model's parsed record or the deterministic fallback. There is no error
// branch; failure is absorbed here.
type Outcome struct {
	Article  domain.EnrichedArticle
	Fallback bool
}

// Enricher drives the text-generation collaborator. No retries are
// performed: a failed call is terminal for that article and yields the
// fallback record.
type Enricher struct {
	generator ports.TextGenerator
	logger    *slog.Logger
}

// NewEnricher wires the collaborator; generator may be nil, in which case
// every article takes the fallback branch.
func NewEnricher(generator ports.TextGenerator, logger *slog.Logger) *Enricher {
	return &Enricher{generator: generator, logger: logger}
}

// Enrich builds the analyst prompt, invokes the collaborator and parses
// the completion strictly against the target schema.
func (e *Enricher) Enrich(ctx context.Context, article domain.StructuredArticle) Outcome {
	if e.generator == nil {
		return Outcome{Article: Fallback(article), Fallback: true}
	}

	completion, err := e.generator.Generate(ctx, BuildPrompt(article))
	if err != nil {
		e.warn("text generation failed", "url", article.URL, "error", err)
		return Outcome{Article: Fallback(article), Fallback: true}
	}

	parsed, err := parseCompletion(completion)
	if err != nil {
		e.warn("completion did not conform to schema", "url", article.URL, "error", err)
		return Outcome{Article: Fallback(article), Fallback: true}
	}

	parsed.ResearchReferences = article.ResearchReferences
	return Outcome{Article: parsed}
}

// EnrichAll enriches articles sequentially in input order. The result
// always has one record per input, fallbacks included.
func (e *Enricher) EnrichAll(ctx context.Context, articles []domain.StructuredArticle) []domain.EnrichedArticle {
	enriched := make([]domain.EnrichedArticle, 0, len(articles))
	for _, article := range articles {
		enriched = append(enriched, e.Enrich(ctx, article).Article)
	}
	return enriched
}

// Fallback builds the collaborator-independent stand-in record. It is a
// pure function of the structured article: title, url, date, source and
// location carry through, everything the model would have added takes a
// fixed value.
func Fallback(article domain.StructuredArticle) domain.EnrichedArticle {
	return domain.EnrichedArticle{
		Title:              article.Title,
		URL:                article.URL,
		Date:               article.Date,
		Source:             article.Source,
		Category:           domain.Uncategorized,
		Location:           article.Location,
		Summary:            fallbackSummary,
		References:         []domain.Reference{},
		Sentiment:          fallbackSentiment,
		Recommendation:     fallbackRecommendation,
		FinancialImpact:    fallbackFinancialImpact,
		ResearchReferences: article.ResearchReferences,
	}
}

func parseCompletion(completion string) (domain.EnrichedArticle, error) {
	var parsed domain.EnrichedArticle
	err := json.Unmarshal([]byte(stripCodeFence(completion)), &parsed)
	return parsed, err
}

// stripCodeFence removes a surrounding Markdown code fence; models wrap
// JSON output that way despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func (e *Enricher) warn(msg string, args ...any) {
	if e.logger != nil {
		e.logger.Warn(msg, args...)
	}
}
