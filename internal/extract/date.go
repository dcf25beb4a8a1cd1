// Package extract holds the best-effort field heuristics applied to
// normalized article text. Every extractor resolves a miss with a
// documented default rather than an error.
package extract

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

// datePatterns are tried in order against each text. Note the parse quirk
// below in DateExtractor.Best: only the first pattern's dashed form survives
// the fixed-layout parse, so the textual patterns fall through to the
// default. This mirrors the long-standing production behavior that the
// dashboard's date filters were tuned against.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(20\d{2})[-/](\d{2})[-/](\d{2})`),
	regexp.MustCompile(`\d{1,2} [A-Za-z]+ 20\d{2}`),
	regexp.MustCompile(`[A-Za-z]+ \d{1,2}, 20\d{2}`),
}

// DateExtractor finds the most plausible publication date in article texts.
type DateExtractor struct {
	now func() time.Time
}

// NewDateExtractor builds an extractor; now may be nil and defaults to
// time.Now.
func NewDateExtractor(now func() time.Time) *DateExtractor {
	if now == nil {
		now = time.Now
	}
	return &DateExtractor{now: now}
}

// Best scans url, then title, then content for a date and returns it in
// YYYY-MM-DD form. When no candidate parses, it returns the current date.
func (d *DateExtractor) Best(url, title, content string) string {
	for _, text := range []string{url, title, content} {
		for _, pattern := range datePatterns {
			match := pattern.FindString(text)
			if match == "" {
				continue
			}
			if parsed, err := time.Parse(dateLayout, match); err == nil {
				return parsed.Format(dateLayout)
			}
		}
	}
	return d.now().Format(dateLayout)
}
