package extract

import (
	"strings"

	"InsuranceNewsAgent/internal/domain"
)

// Categorizer assigns the first matching category from an ordered rule
// list. Rule order is the tie-break: earlier rules win.
type Categorizer struct {
	rules []domain.CategoryRule
}

// NewCategorizer builds a classifier over the given rules.
func NewCategorizer(rules []domain.CategoryRule) *Categorizer {
	return &Categorizer{rules: rules}
}

// Categorize lowercases the text and returns the first rule whose keyword
// list has a substring hit, falling back to the "Uncategorized" sentinel.
func (c *Categorizer) Categorize(text string) string {
	lowered := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Name
			}
		}
	}
	return domain.Uncategorized
}
