package extract

import (
	"InsuranceNewsAgent/internal/domain"
	"InsuranceNewsAgent/internal/ports"
)

// geoLabels are the entity types that denote a place.
var geoLabels = map[string]bool{
	"GPE": true,
	"LOC": true,
}

// LocationExtractor derives an article's location from named entities.
type LocationExtractor struct {
	recognizer ports.EntityRecognizer
}

// NewLocationExtractor wires the entity-recognition collaborator.
func NewLocationExtractor(recognizer ports.EntityRecognizer) *LocationExtractor {
	return &LocationExtractor{recognizer: recognizer}
}

// Best returns the most frequent geopolitical or location entity in the
// text, breaking ties by first appearance. Recognition failures and texts
// without place entities resolve to the "Unknown Location" sentinel.
func (l *LocationExtractor) Best(text string) string {
	if l.recognizer == nil {
		return domain.UnknownLocation
	}

	entities, err := l.recognizer.Entities(text)
	if err != nil {
		return domain.UnknownLocation
	}

	counts := map[string]int{}
	order := make([]string, 0, len(entities))
	for _, ent := range entities {
		if !geoLabels[ent.Label] {
			continue
		}
		if counts[ent.Text] == 0 {
			order = append(order, ent.Text)
		}
		counts[ent.Text]++
	}

	best := domain.UnknownLocation
	bestCount := 0
	for _, place := range order {
		if counts[place] > bestCount {
			best = place
			bestCount = counts[place]
		}
	}
	return best
}
