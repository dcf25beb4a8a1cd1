// Package parser normalizes the loosely-shaped payloads returned by search
// providers into a uniform result list. Shape dispatch happens here and
// nowhere else: the rest of the pipeline only sees domain.RawResult.
package parser

import (
	"encoding/json"

	"InsuranceNewsAgent/internal/domain"
)

// Results extracts raw search results from a provider payload. Accepted
// shapes are a JSON-encoded string, a result sequence, and a mapping with
// a "results" key. Any other shape, including undecodable JSON, yields an
// empty slice; Results never panics and never returns an error.
func Results(payload any) []domain.RawResult {
	switch v := payload.(type) {
	case nil:
		return nil
	case string:
		return fromJSON([]byte(v))
	case []byte:
		return fromJSON(v)
	case json.RawMessage:
		return fromJSON(v)
	case []domain.RawResult:
		return v
	case []map[string]any:
		results := make([]domain.RawResult, 0, len(v))
		for _, item := range v {
			results = append(results, fromMap(item))
		}
		return results
	case []any:
		results := make([]domain.RawResult, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			results = append(results, fromMap(m))
		}
		return results
	case map[string]any:
		inner, ok := v["results"]
		if !ok {
			return nil
		}
		return Results(inner)
	default:
		return nil
	}
}

func fromJSON(data []byte) []domain.RawResult {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil
	}
	// Guard against a JSON string that itself decodes to a string; without
	// this a degenerate payload could recurse indefinitely.
	if _, ok := decoded.(string); ok {
		return nil
	}
	return Results(decoded)
}

// fromMap reads the documented fields opportunistically: absent or
// non-string values become "".
func fromMap(m map[string]any) domain.RawResult {
	return domain.RawResult{
		URL:     stringField(m, "url"),
		Title:   stringField(m, "title"),
		Source:  stringField(m, "source"),
		Content: stringField(m, "content"),
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
