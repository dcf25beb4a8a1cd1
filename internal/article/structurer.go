// Package article turns raw search results into fully-populated
// StructuredArticle records and tags them with trusted-source references.
package article

import (
	"log/slog"
	"net/url"
	"path"
	"strings"

	"InsuranceNewsAgent/internal/domain"
	"InsuranceNewsAgent/internal/extract"
	"InsuranceNewsAgent/internal/parser"
	"InsuranceNewsAgent/internal/textnorm"
)

// summaryInputTokens bounds the condensed text handed to enrichment.
const summaryInputTokens = 800

// Structurer builds canonical article records from provider payloads.
type Structurer struct {
	dates      *extract.DateExtractor
	locations  *extract.LocationExtractor
	categories *extract.Categorizer
	logger     *slog.Logger
}

// StructurerDeps wires the field extractors into the structurer.
type StructurerDeps struct {
	Dates      *extract.DateExtractor
	Locations  *extract.LocationExtractor
	Categories *extract.Categorizer
	Logger     *slog.Logger
}

// NewStructurer constructs the structuring component.
func NewStructurer(deps StructurerDeps) *Structurer {
	return &Structurer{
		dates:      deps.Dates,
		locations:  deps.Locations,
		categories: deps.Categories,
		logger:     deps.Logger,
	}
}

// Structure parses the payload and emits one StructuredArticle per raw
// result, preserving input order. Malformed individual results never abort
// the batch: every field of every record is populated, with sentinels where
// nothing could be derived.
func (s *Structurer) Structure(payload any) []domain.StructuredArticle {
	raw := parser.Results(payload)
	s.debug("parsed raw results", "count", len(raw))

	structured := make([]domain.StructuredArticle, 0, len(raw))
	for _, result := range raw {
		structured = append(structured, s.structureOne(result))
	}
	return structured
}

func (s *Structurer) structureOne(result domain.RawResult) domain.StructuredArticle {
	title := result.Title
	if title == "" {
		title = urlBasename(result.URL)
	}
	if title == "" {
		title = domain.NoTitle
	}

	source := result.Source
	if source == "" {
		source = domainAsSource(result.URL)
	}

	fullContent := textnorm.Clean(result.Content)

	return domain.StructuredArticle{
		Title:        title,
		URL:          result.URL,
		Source:       source,
		Date:         s.dates.Best(result.URL, title, fullContent),
		Location:     s.locations.Best(fullContent),
		Category:     s.categories.Categorize(fullContent),
		SummaryInput: truncateTokens(fullContent, summaryInputTokens),
		FullContent:  fullContent,
	}
}

func (s *Structurer) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

// urlBasename returns the last path segment of a URL, or "" when the URL
// carries no usable segment.
func urlBasename(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	base := path.Base(rawURL)
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// domainAsSource derives a source name from the URL host, without a
// leading "www.".
func domainAsSource(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// truncateTokens keeps the first n whitespace-delimited tokens of text.
func truncateTokens(text string, n int) string {
	fields := strings.Fields(text)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
