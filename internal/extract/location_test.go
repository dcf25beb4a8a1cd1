package extract

import (
	"errors"
	"testing"

	"InsuranceNewsAgent/internal/domain"
	"InsuranceNewsAgent/internal/ports"
)

type stubRecognizer struct {
	entities []ports.Entity
	err      error
}

func (s *stubRecognizer) Entities(string) ([]ports.Entity, error) {
	return s.entities, s.err
}

func TestLocationMostFrequentWins(t *testing.T) {
	t.Parallel()

	l := NewLocationExtractor(&stubRecognizer{entities: []ports.Entity{
		{Text: "Germany", Label: "GPE"},
		{Text: "Berlin", Label: "GPE"},
		{Text: "Germany", Label: "GPE"},
		{Text: "Allianz", Label: "ORG"},
	}})

	if got := l.Best("irrelevant"); got != "Germany" {
		t.Fatalf("unexpected location: %s", got)
	}
}

func TestLocationTieBreaksOnFirstSeen(t *testing.T) {
	t.Parallel()

	l := NewLocationExtractor(&stubRecognizer{entities: []ports.Entity{
		{Text: "France", Label: "LOC"},
		{Text: "Spain", Label: "GPE"},
	}})

	if got := l.Best("irrelevant"); got != "France" {
		t.Fatalf("expected first-seen entity to win ties, got %s", got)
	}
}

func TestLocationNoGeoEntities(t *testing.T) {
	t.Parallel()

	l := NewLocationExtractor(&stubRecognizer{entities: []ports.Entity{
		{Text: "Allianz", Label: "ORG"},
	}})

	if got := l.Best("irrelevant"); got != domain.UnknownLocation {
		t.Fatalf("expected sentinel, got %s", got)
	}
}

func TestLocationRecognizerFailure(t *testing.T) {
	t.Parallel()

	l := NewLocationExtractor(&stubRecognizer{err: errors.New("model unavailable")})
	if got := l.Best("irrelevant"); got != domain.UnknownLocation {
		t.Fatalf("expected sentinel on failure, got %s", got)
	}
}

func TestLocationNilRecognizer(t *testing.T) {
	t.Parallel()

	l := NewLocationExtractor(nil)
	if got := l.Best("irrelevant"); got != domain.UnknownLocation {
		t.Fatalf("expected sentinel with nil recognizer, got %s", got)
	}
}
