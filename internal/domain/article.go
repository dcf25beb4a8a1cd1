package domain

// Sentinel values used when a field cannot be derived from the payload.
const (
	NoTitle         = "No Title"
	UnknownLocation = "Unknown Location"
	Uncategorized   = "Uncategorized"
	NoReferences    = "None"
)

// RawResult is a single search-provider hit before normalization.
// Every field is optional on the wire; decoding coerces absent or
// non-string values to "".
type RawResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Source  string `json:"source"`
	Content string `json:"content"`
}

// StructuredArticle is the canonical internal record. Every field is
// populated after structuring; downstream code never checks for absence.
type StructuredArticle struct {
	Title              string   `json:"title"`
	URL                string   `json:"url"`
	Source             string   `json:"source"`
	Date               string   `json:"date"`
	Location           string   `json:"location"`
	Category           string   `json:"category"`
	SummaryInput       string   `json:"summary_input"`
	FullContent        string   `json:"full_content"`
	ResearchReferences []string `json:"research_references"`
}

// Reference is a named link suggested by the enrichment model.
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EnrichedArticle is the terminal, analyst-facing record handed to the
// presentation layer.
type EnrichedArticle struct {
	Title              string      `json:"title"`
	URL                string      `json:"url"`
	Date               string      `json:"date"`
	Source             string      `json:"source"`
	Category           string      `json:"category"`
	Location           string      `json:"location"`
	Summary            string      `json:"summary"`
	References         []Reference `json:"references"`
	Sentiment          string      `json:"sentiment"`
	Recommendation     string      `json:"recommendation"`
	FinancialImpact    string      `json:"financial_impact"`
	ResearchReferences []string    `json:"research_references,omitempty"`
}

// TrustedSource maps an organization to the domain substrings that
// identify its publications. Registry order is significant: reference
// hits are reported in registry order.
type TrustedSource struct {
	Organization string
	Domains      []string
}

// CategoryRule assigns a category when any keyword is a substring of the
// lowercased article text. Rules are evaluated in declaration order and
// the first hit wins.
type CategoryRule struct {
	Name     string
	Keywords []string
}
