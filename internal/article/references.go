package article

import (
	"strings"

	"InsuranceNewsAgent/internal/domain"
)

// ReferenceRegistry tags articles with the trusted organizations whose
// domains appear in the article URL. The registry is static configuration;
// tagging is pure and order-preserving.
type ReferenceRegistry struct {
	sources []domain.TrustedSource
}

// NewReferenceRegistry builds a registry over the configured sources.
func NewReferenceRegistry(sources []domain.TrustedSource) *ReferenceRegistry {
	return &ReferenceRegistry{sources: sources}
}

// Enrich sets ResearchReferences on every article: the organizations, in
// registry order, with a domain substring hit against the article URL, or
// the single-element "None" sentinel when nothing matches.
func (r *ReferenceRegistry) Enrich(articles []domain.StructuredArticle) []domain.StructuredArticle {
	for i := range articles {
		articles[i].ResearchReferences = r.match(articles[i].URL)
	}
	return articles
}

func (r *ReferenceRegistry) match(articleURL string) []string {
	var references []string
	for _, source := range r.sources {
		for _, d := range source.Domains {
			if strings.Contains(articleURL, d) {
				references = append(references, source.Organization)
				break
			}
		}
	}
	if len(references) == 0 {
		return []string{domain.NoReferences}
	}
	return references
}
