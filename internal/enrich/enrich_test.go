package enrich

import (
	"context"
	"errors"
	"strings"
	"testing"

	"InsuranceNewsAgent/internal/domain"
)

type stubGenerator struct {
	completion string
	err        error
	calls      int
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.completion, s.err
}

var testArticle = domain.StructuredArticle{
	Title:              "Flood Risk Update",
	URL:                "https://swissre.com/report",
	Source:             "swissre.com",
	Date:               "2024-05-01",
	Location:           "Germany",
	Category:           "Insurance Exposures",
	SummaryInput:       "A flood in Germany caused insured losses.",
	FullContent:        "A flood in Germany on 2024-05-01 caused insured losses.",
	ResearchReferences: []string{"Swiss Re"},
}

const validCompletion = `{
  "title": "Flood Risk Update",
  "url": "https://swissre.com/report",
  "date": "2024-05-01",
  "source": "swissre.com",
  "category": "Insurance Exposures",
  "location": "Germany",
  "summary": "A flood in Germany drove insured losses.",
  "references": [{"name": "Swiss Re", "url": "https://swissre.com/report"}],
  "sentiment": "Negative",
  "recommendation": "Monitor flood exposure in Germany.",
  "financial_impact": "Insured losses expected."
}`

func TestEnrichParsesCompletion(t *testing.T) {
	t.Parallel()

	e := NewEnricher(&stubGenerator{completion: validCompletion}, nil)
	outcome := e.Enrich(context.Background(), testArticle)

	if outcome.Fallback {
		t.Fatalf("expected parsed outcome, got fallback")
	}
	a := outcome.Article
	if a.Summary != "A flood in Germany drove insured losses." {
		t.Fatalf("unexpected summary: %s", a.Summary)
	}
	if a.Sentiment != "Negative" {
		t.Fatalf("unexpected sentiment: %s", a.Sentiment)
	}
	if len(a.References) != 1 || a.References[0].Name != "Swiss Re" {
		t.Fatalf("unexpected references: %+v", a.References)
	}
	if len(a.ResearchReferences) != 1 || a.ResearchReferences[0] != "Swiss Re" {
		t.Fatalf("research references must carry through: %v", a.ResearchReferences)
	}
}

func TestEnrichToleratesCodeFence(t *testing.T) {
	t.Parallel()

	fenced := "```json\n" + validCompletion + "\n```"
	e := NewEnricher(&stubGenerator{completion: fenced}, nil)

	outcome := e.Enrich(context.Background(), testArticle)
	if outcome.Fallback {
		t.Fatalf("expected parsed outcome for fenced JSON")
	}
}

func TestEnrichFallsBackOnGeneratorError(t *testing.T) {
	t.Parallel()

	e := NewEnricher(&stubGenerator{err: errors.New("rate limited")}, nil)
	outcome := e.Enrich(context.Background(), testArticle)

	if !outcome.Fallback {
		t.Fatalf("expected fallback outcome")
	}
	assertFallback(t, outcome.Article)
}

func TestEnrichFallsBackOnMalformedCompletion(t *testing.T) {
	t.Parallel()

	e := NewEnricher(&stubGenerator{completion: "Sorry, I cannot produce JSON."}, nil)
	outcome := e.Enrich(context.Background(), testArticle)

	if !outcome.Fallback {
		t.Fatalf("expected fallback outcome")
	}
	assertFallback(t, outcome.Article)
}

func TestEnrichAllNeverDropsArticles(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{err: errors.New("service down")}
	e := NewEnricher(gen, nil)

	articles := []domain.StructuredArticle{
		{Title: "a", URL: "https://x.example/a"},
		{Title: "b", URL: "https://x.example/b"},
		{Title: "c", URL: "https://x.example/c"},
	}

	enriched := e.EnrichAll(context.Background(), articles)
	if len(enriched) != len(articles) {
		t.Fatalf("expected %d records, got %d", len(articles), len(enriched))
	}
	if gen.calls != len(articles) {
		t.Fatalf("one failed call must not abort the batch: %d calls", gen.calls)
	}
	for i, a := range enriched {
		if a.Title != articles[i].Title {
			t.Fatalf("order not preserved at %d: %s", i, a.Title)
		}
	}
}

func TestFallbackIsPure(t *testing.T) {
	t.Parallel()

	first := Fallback(testArticle)
	second := Fallback(testArticle)

	if first.Summary != second.Summary || first.Sentiment != second.Sentiment {
		t.Fatalf("fallback must be deterministic")
	}
	assertFallback(t, first)
}

func TestBuildPromptEmbedsArticleFields(t *testing.T) {
	t.Parallel()

	prompt := BuildPrompt(testArticle)
	for _, fragment := range []string{
		testArticle.Title, testArticle.URL, testArticle.Date,
		testArticle.Source, testArticle.SummaryInput,
	} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("prompt missing %q", fragment)
		}
	}
}

func TestBuildPromptBoundsContent(t *testing.T) {
	t.Parallel()

	long := testArticle
	long.FullContent = strings.Repeat("x", promptContentLimit+500)

	prompt := BuildPrompt(long)
	if strings.Contains(prompt, strings.Repeat("x", promptContentLimit+1)) {
		t.Fatalf("prompt content must be capped at %d characters", promptContentLimit)
	}
}

func assertFallback(t *testing.T, a domain.EnrichedArticle) {
	t.Helper()

	if a.Title != testArticle.Title || a.URL != testArticle.URL ||
		a.Date != testArticle.Date || a.Source != testArticle.Source {
		t.Fatalf("original identity fields must carry through: %+v", a)
	}
	if a.Category != domain.Uncategorized {
		t.Fatalf("unexpected category: %s", a.Category)
	}
	if a.Sentiment != "Unknown" {
		t.Fatalf("unexpected sentiment: %s", a.Sentiment)
	}
	if a.Recommendation != "N/A" {
		t.Fatalf("unexpected recommendation: %s", a.Recommendation)
	}
	if a.FinancialImpact != "Not specified" {
		t.Fatalf("unexpected financial impact: %s", a.FinancialImpact)
	}
	if len(a.References) != 0 {
		t.Fatalf("fallback references must be empty, got %+v", a.References)
	}
}
