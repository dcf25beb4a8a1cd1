package usecase

import (
	"fmt"
	"strings"
	"time"
)

const queryDateLayout = "January 2, 2006"

// BuildQuery assembles the daily triage query: all keywords OR-joined,
// constrained to recent coverage by naming today and yesterday explicitly.
func BuildQuery(keywords []string, now time.Time) string {
	today := now.Format(queryDateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(queryDateLayout)
	return fmt.Sprintf("(%s) AND (%s OR %s OR this week)",
		strings.Join(keywords, " OR "), today, yesterday)
}
